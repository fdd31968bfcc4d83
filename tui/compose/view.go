package compose

import (
	"strings"

	"chucklechain/composer"
	"chucklechain/domain"
	"chucklechain/tui/common"
)

// View renders the composition form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("New meme"))
	b.WriteString("\n\n")

	b.WriteString(m.label("Caption", fieldCaption) + "\n")
	b.WriteString(m.caption.View() + "\n\n")

	b.WriteString(m.label("Image file", fieldImage) + "\n")
	b.WriteString("  " + m.imagePath.View() + "\n\n")

	b.WriteString(m.label("Category", fieldCategory) + "\n")
	b.WriteString("  " + m.category.View() + "\n\n")

	b.WriteString(m.label("Caption placement", fieldPlacement))
	b.WriteString("  " + placementLabel(m.placement) + "\n")

	b.WriteString(m.label("Text position", fieldPosition))
	b.WriteString("  " + positionLabel(m.position) + "\n\n")

	submit := "[ Post it ]"
	if m.focus == fieldSubmit {
		submit = common.SelectedStyle.Render(submit)
	} else {
		submit = common.CountStyle.Render(submit)
	}
	b.WriteString(submit + "\n")

	if m.errText != "" {
		b.WriteString("\n" + common.ErrorStyle.Render(m.errText) + "\n")
	}

	b.WriteString(common.StatusBarStyle.Render("tab next field · enter/space toggle · ctrl+s post · esc cancel"))
	return b.String()
}

func (m Model) label(text string, field int) string {
	if m.focus == field {
		return common.UsernameStyle.Render("> " + text)
	}
	return common.TimestampStyle.Render("  " + text)
}

func placementLabel(p domain.CaptionPlacement) string {
	if p == domain.PlacementWhitespace {
		return "band above the image"
	}
	return "overlaid on the image"
}

func positionLabel(p composer.TextPosition) string {
	if p == composer.TextBottom {
		return "bottom"
	}
	return "top"
}
