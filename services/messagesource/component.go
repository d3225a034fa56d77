package messagesource

import (
	"bytes"

	"github.com/bwmarrin/discordgo"

	"messagecloner/core"
)

// ComponentInfo holds the components of the message that can be recreated
type ComponentInfo struct {
	// URLComponents are link buttons, grouped in their original rows
	URLComponents []discordgo.MessageComponent
	// HasInvalidComponents is set when any component was left out of URLComponents
	HasInvalidComponents bool
}

// CheckComponent returns core.ErrSourceComponent if the message has components
// other than link buttons. Link buttons only hold a URL, so they're recreated
// as they are, anything else needs the original bot to handle interactions.
func (s *MessageSource) CheckComponent() error {
	if s.ComponentInfo.HasInvalidComponents {
		return core.ErrSourceComponent
	}
	return nil
}

func newComponentInfo(components []discordgo.MessageComponent) ComponentInfo {
	urlComponents := filterValidComponents(components)
	return ComponentInfo{
		URLComponents:        urlComponents,
		HasInvalidComponents: !componentsEqual(components, urlComponents),
	}
}

// filterValidComponents keeps the valid components, dropping rows left empty
func filterValidComponents(components []discordgo.MessageComponent) []discordgo.MessageComponent {
	var valid []discordgo.MessageComponent
	for _, component := range components {
		row, isRow := asActionsRow(component)
		if !isRow {
			if isValidComponent(component) {
				valid = append(valid, component)
			}
			continue
		}

		var validInner []discordgo.MessageComponent
		for _, inner := range row.Components {
			if isValidComponent(inner) {
				validInner = append(validInner, inner)
			}
		}
		if len(validInner) > 0 {
			valid = append(valid, discordgo.ActionsRow{Components: validInner, ID: row.ID})
		}
	}
	return valid
}

func asActionsRow(component discordgo.MessageComponent) (discordgo.ActionsRow, bool) {
	switch row := component.(type) {
	case discordgo.ActionsRow:
		return row, true
	case *discordgo.ActionsRow:
		if row == nil {
			return discordgo.ActionsRow{}, false
		}
		return *row, true
	default:
		return discordgo.ActionsRow{}, false
	}
}

func isValidComponent(component discordgo.MessageComponent) bool {
	switch button := component.(type) {
	case discordgo.Button:
		return isLinkButton(button)
	case *discordgo.Button:
		return button != nil && isLinkButton(*button)
	default:
		return false
	}
}

func isLinkButton(button discordgo.Button) bool {
	return button.Style == discordgo.LinkButton && button.CustomID == ""
}

// componentsEqual compares components by their JSON encoding, so pointer and
// value forms of the same component are equal
func componentsEqual(a, b []discordgo.MessageComponent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		encodedA, errA := discordgo.Marshal(a[i])
		encodedB, errB := discordgo.Marshal(b[i])
		if errA != nil || errB != nil || !bytes.Equal(encodedA, encodedB) {
			return false
		}
	}
	return true
}
