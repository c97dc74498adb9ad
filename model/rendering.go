package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	cellAlive = " x "
	cellDead  = "   "
	cellWall  = "|"
	lineChar  = "-"

	macosClearCmd = "clear"
)

// TerminalRenderer draws a board as a bordered text grid
type TerminalRenderer struct {
	// Out defaults to os.Stdout
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the board, row 0 at the top
func (r *TerminalRenderer) Display(b *Board) {
	var (
		sb   strings.Builder
		line = strings.Repeat(lineChar, b.ColCount()*4+1)
	)

	sb.WriteString(line)
	sb.WriteString("\n")
	for _, row := range b.Rows() {
		sb.WriteString(cellWall)
		for _, cell := range row {
			if cell.IsAlive() {
				sb.WriteString(cellAlive)
			} else {
				sb.WriteString(cellDead)
			}
			sb.WriteString(cellWall)
		}
		sb.WriteString("\n")
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	fmt.Fprint(r.out(), sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
