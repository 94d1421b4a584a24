package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rizkyamal/nusaview/internal/client/nav"
)

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to NusaView (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("nusaview %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Println("Bye!")
			return
		}

		switch a.nav.Current() {
		case nav.RouteLogin:
			a.dispatchLogin(ctx, cmd)
		case nav.RouteRegister:
			a.dispatchRegister(ctx, cmd)
		case nav.RouteVerifyEmail:
			a.dispatchVerify(cmd)
		case nav.RouteMain:
			a.dispatchMain(ctx, cmd, args)
		}
	}
}

func (a *App) dispatchLogin(ctx context.Context, cmd string) {
	switch cmd {
	case "help":
		fmt.Println("Available commands: login, register, exit")
	case "login":
		a.Login(ctx)
	case "register":
		if err := a.nav.Push(nav.RouteRegister); err == nil {
			a.Register(ctx)
		}
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func (a *App) dispatchRegister(ctx context.Context, cmd string) {
	switch cmd {
	case "help":
		fmt.Println("Available commands: register, back, exit")
	case "register":
		a.Register(ctx)
	case "back":
		a.nav.Back()
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func (a *App) dispatchVerify(cmd string) {
	switch cmd {
	case "help":
		fmt.Println("A verification link was sent to your email.")
		fmt.Println("Available commands: verified, exit")
	case "verified":
		a.nav.VerificationAcknowledged()
		fmt.Println("Please log in with your verified account.")
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func (a *App) dispatchMain(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		fmt.Println("Available commands: tab <name>, (l)ist, add, edit <id>, delete <id>, logout, exit")
		fmt.Println("Tabs: destinations, culinary, gallery, souvenirs, accommodations")
	case "tab":
		if len(args) == 0 {
			fmt.Println("Usage: tab <destinations|culinary|gallery|souvenirs|accommodations>")
			return
		}
		a.switchTab(args[0])
	case "l", "list":
		a.list(ctx)
	case "add":
		a.add(ctx)
	case "edit":
		if len(args) == 0 {
			fmt.Println("Usage: edit <id>")
			return
		}
		a.edit(ctx, args[0])
	case "delete":
		if len(args) == 0 {
			fmt.Println("Usage: delete <id>")
			return
		}
		a.delete(ctx, args[0])
	case "logout":
		a.Logout(ctx)
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func (a *App) switchTab(name string) {
	switch name {
	case nav.TabDestinations, nav.TabCulinary, nav.TabGallery, nav.TabSouvenirs, nav.TabAccommodations:
		a.tab = name
	default:
		fmt.Println("Unknown tab:", name)
	}
}

func (a *App) list(ctx context.Context) {
	switch a.tab {
	case nav.TabDestinations:
		a.listDestinations(ctx)
	case nav.TabCulinary:
		a.listCulinary(ctx)
	case nav.TabGallery:
		a.listGallery(ctx)
	case nav.TabSouvenirs:
		a.listSouvenirs(ctx)
	case nav.TabAccommodations:
		a.listAccommodations(ctx)
	}
}

func (a *App) add(ctx context.Context) {
	switch a.tab {
	case nav.TabDestinations:
		a.addDestination(ctx)
	case nav.TabCulinary:
		a.addCulinary(ctx)
	case nav.TabGallery:
		a.addGalleryPhoto(ctx)
	case nav.TabSouvenirs:
		a.addSouvenir(ctx)
	case nav.TabAccommodations:
		a.addAccommodation(ctx)
	}
}

func (a *App) edit(ctx context.Context, id string) {
	switch a.tab {
	case nav.TabDestinations:
		a.editDestination(ctx, id)
	case nav.TabSouvenirs:
		a.editSouvenir(ctx, id)
	case nav.TabAccommodations:
		a.editAccommodation(ctx, id)
	default:
		fmt.Println("Entries in this tab cannot be edited.")
	}
}

func (a *App) delete(ctx context.Context, id string) {
	switch a.tab {
	case nav.TabDestinations:
		a.deleteDestination(ctx, id)
	case nav.TabSouvenirs:
		a.deleteSouvenir(ctx, id)
	default:
		fmt.Println("Entries in this tab cannot be deleted.")
	}
}
