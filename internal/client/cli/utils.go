package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/rizkyamal/nusaview/internal/client/services"
)

// promptImage asks for a local file path and returns its bytes. An empty path
// means "no image"; an unreadable file is reported and treated the same way.
func (a *App) promptImage(prompt string) []byte {
	path, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil || path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("cannot read image file: %v", err)
		return nil
	}
	return data
}

// renderState prints the error slot (if set) and each item. A failed fetch
// still renders whatever list was loaded before.
func renderState[T any](st services.State[T], render func(T)) {
	if st.Err != "" {
		fmt.Println("Error:", st.Err)
	}
	if len(st.Items) == 0 {
		fmt.Println("No entries.")
		return
	}
	for _, item := range st.Items {
		render(item)
	}
}
