// Package clipboard adapts the system clipboard to the collaborator
// interface the calculator consumes.
package clipboard

import (
	atotto "github.com/atotto/clipboard"

	"github.com/guilherme-santos/datecalc"
)

type System struct{}

func (System) Copy(text string) error {
	return atotto.WriteAll(text)
}

// Nop discards copies; used when no system clipboard is available.
type Nop struct{}

func (Nop) Copy(string) error {
	return nil
}

var (
	_ datecalc.Clipboard = System{}
	_ datecalc.Clipboard = Nop{}
)
