package feed

import (
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"chucklechain/domain"
	"chucklechain/tui/common"
)

// Row counts for the terminal stand-in of the meme image.
const (
	listImageRows   = 5
	detailImageRows = 9
)

// renderMemeCard draws a post's image as a framed placeholder with the
// caption placed the way the post asks for it: whitespace placement puts
// the caption in a band above the frame, on-image placement projects each
// overlay onto a frame row by its Y percentage. Legacy posts without a
// placement fall back to a plain caption line above the frame.
func renderMemeCard(p domain.Post, width int, detail bool) string {
	rows := listImageRows
	if detail {
		rows = detailImageRows
	}
	inner := width - 2

	var b strings.Builder

	caption := strings.TrimSpace(p.Text)
	onImage := p.CaptionPlacement == domain.PlacementOnImage && len(p.MemeTexts) > 0
	if caption != "" && !onImage {
		b.WriteString(common.CaptionStyle.Render(ansi.Truncate(caption, width, "…")))
		b.WriteString("\n")
	}

	lines := make([]string, rows)
	mid := rows / 2
	lines[mid] = common.TimestampStyle.Render(common.PadCenter(imageLabel(p.Image), inner))

	if onImage {
		for _, mt := range p.MemeTexts {
			row := overlayRow(mt.Y, rows)
			text := mt.Text
			if mt.Uppercase {
				text = strings.ToUpper(text)
			}
			text = ansi.Truncate(text, inner, "…")
			if mt.TextAlign == "center" {
				text = common.PadCenter(text, inner)
			}
			lines[row] = common.OverlayStyle.Render(text)
		}
	}

	top := "╭" + strings.Repeat("─", inner) + "╮"
	bottom := "╰" + strings.Repeat("─", inner) + "╯"

	b.WriteString(top + "\n")
	for _, line := range lines {
		b.WriteString("│" + padRow(line, inner) + "│\n")
	}
	b.WriteString(bottom)
	return b.String()
}

// overlayRow maps a Y percentage onto a frame row, keeping overlays off the
// borders.
func overlayRow(y float64, rows int) int {
	if y < 0 {
		y = 0
	}
	if y > 100 {
		y = 100
	}
	row := int(y / 100 * float64(rows-1))
	if row < 0 {
		row = 0
	}
	if row > rows-1 {
		row = rows - 1
	}
	return row
}

// padRow right-pads a possibly styled line to the frame's inner width.
func padRow(line string, inner int) string {
	w := ansi.StringWidth(line)
	if w >= inner {
		return ansi.Truncate(line, inner, "")
	}
	return line + strings.Repeat(" ", inner-w)
}

// imageLabel derives a short placeholder label from the image reference.
func imageLabel(image string) string {
	if strings.HasPrefix(image, "data:") {
		return "[ uploaded image ]"
	}
	u, err := url.Parse(image)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "[ image ]"
	}
	return "[ " + path.Base(u.Path) + " ]"
}
