// Package cli implements a command-line rendering of Tafl boards.
package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/hnefGo/internal/state"
	"golang.org/x/term"
)

// CharsPerColumn is the display width of one tile.
const CharsPerColumn = 3

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// StripANSI removes color/control sequences from s.
func StripANSI(s string) string {
	return ansiFilter.ReplaceAllString(s, "")
}

var (
	tileStyles = [NumTileTypes]lipgloss.Style{
		TileEmpty:  lipgloss.NewStyle(),
		TileCastle: lipgloss.NewStyle().Background(lipgloss.Color("8")),
		TileThrone: lipgloss.NewStyle().Background(lipgloss.Color("3")),
		TileCamp:   lipgloss.NewStyle().Background(lipgloss.Color("4")),
	}
	teamStyles = [NumTeams]lipgloss.Style{
		Muscovite: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Swede:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	}
	escapeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(0, 2)
)

// UI renders boards to a writer.
type UI struct {
	color, clearScreen bool
	out                io.Writer
}

// New creates a UI that prints to the standard output.
func New(color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		out:         os.Stdout,
	}
}

// NewWithWriter creates a UI that prints to w. Blocks are never centered, since w is not
// a terminal.
func NewWithWriter(w io.Writer, color bool) *UI {
	return &UI{color: color, out: w}
}

// terminalWidth returns the width of the terminal the UI prints to, or 0 if it is not
// printing to a terminal.
func (ui *UI) terminalWidth() int {
	f, ok := ui.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// Print the board preceded by a title, typically the name of the file it was read from.
func (ui *UI) Print(board *Board, title string) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	header := fmt.Sprintf("%s (%dx%d)", title, board.Height(), board.Width())
	if ui.color {
		header = titleStyle.Render(header)
	}
	ui.printCentered("\n" + header + "\n")
	ui.PrintBoard(board)
	ui.PrintTokenCounts(board)
}

// PrintBoard prints the board grid, with x coordinates on top and y coordinates on the
// left.
func (ui *UI) PrintBoard(board *Board) {
	ui.printCentered(ui.RenderBoard(board))
}

// RenderBoard returns the board grid as a multi-line string.
//
// Empty tiles are shown as ".", structures with TileLetters, Muscovite tokens as "m",
// Swede tokens as "s" (upper-case for kings), and escape tiles are followed by "*".
func (ui *UI) RenderBoard(board *Board) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", CharsPerColumn))
	for x := range board.Width() {
		_, _ = fmt.Fprintf(&sb, "%2d ", x)
	}
	sb.WriteString("\n")
	for y := range board.Height() {
		_, _ = fmt.Fprintf(&sb, "%2d ", y)
		for x := range board.Width() {
			sb.WriteString(ui.renderTile(board.TileAt(x, y)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (ui *UI) renderTile(tile Tile) string {
	letter := TileLetters[tile.Type()]
	if tile.Type() == TileEmpty {
		letter = "."
	}
	token, occupied := tile.Token()
	if occupied {
		letter = "m"
		if token.Team == Swede {
			letter = "s"
		}
		if token.IsKing() {
			letter = strings.ToUpper(letter)
		}
	}
	mark := " "
	if tile.IsEscape() {
		mark = "*"
	}
	if !ui.color {
		return " " + letter + mark
	}
	if occupied {
		letter = teamStyles[token.Team].Render(letter)
	}
	if tile.IsEscape() {
		mark = escapeStyle.Render(mark)
	}
	return tileStyles[tile.Type()].Render(" " + letter + mark)
}

// PrintTokenCounts prints how many soldiers and kings each team has on the board.
func (ui *UI) PrintTokenCounts(board *Board) {
	for _, team := range TeamValues() {
		name := fmt.Sprintf("%-9s", team)
		if ui.color {
			name = teamStyles[team].Render(name)
		}
		_, _ = fmt.Fprintf(ui.out, "%s soldiers: %2d, kings: %d\n",
			name, board.CountTokens(team, Soldier), board.CountTokens(team, King))
	}
}

// PrintHex prints the board encoding: the header and then one line of tile bytes per row.
func (ui *UI) PrintHex(encoded []byte) {
	if len(encoded) < EncodingHeaderLen {
		_, _ = fmt.Fprintf(ui.out, "invalid encoding: % x\n", encoded)
		return
	}
	height, width := int(encoded[0]), int(encoded[1])
	_, _ = fmt.Fprintf(ui.out, "header: %02x %02x (height=%d, width=%d)\n", encoded[0], encoded[1], height, width)
	tiles := encoded[EncodingHeaderLen:]
	for y := 0; width > 0 && y*width < len(tiles); y++ {
		row := tiles[y*width : min((y+1)*width, len(tiles))]
		_, _ = fmt.Fprintf(ui.out, "%2d: % x\n", y, row)
	}
}
