// Package cli implements the interactive NusaView shell.
//
// The shell is route-driven: the navigation controller decides which command
// set is active. Logged out, the user can only log in or register (with the
// email-verification notice in between); logged in, the main screen exposes
// one tab per content variant with list/add and, where the variant supports
// it, edit/delete.
package cli
