package ui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bugraisin/emass-tui/internal/filter"
)

// Filter form field indexes.
const (
	fieldCategory = iota
	fieldCity
	fieldDistrict
	fieldNeighborhood
	fieldMinPrice
	fieldMaxPrice
	fieldRoomCount
	fieldBathroomCount
	fieldMinSquareMeters
	fieldMaxSquareMeters
	fieldHeating
	fieldBuildingAge
	fieldFeatures
	fieldCount
)

var filterFieldLabels = [fieldCount]string{
	"Category",
	"Cities",
	"Districts",
	"Neighborhoods",
	"Min price",
	"Max price",
	"Rooms",
	"Bathrooms",
	"Min m²",
	"Max m²",
	"Heating",
	"Building age",
	"Features",
}

var filterFieldHints = [fieldCount]string{
	"e.g. SALE_KONUT_DAIRE or RENT_ARSA",
	"comma separated, first one narrows the search",
	"comma separated",
	"comma separated",
	"",
	"",
	"e.g. 3+1",
	"",
	"",
	"",
	"comma separated, e.g. Kombi, Merkezi",
	"comma separated, e.g. 0-5, 5-10",
	"comma separated, e.g. balcony, parking",
}

// filterForm is the search filter panel backed by one text input per
// field. Only the house endpoint has detail fields that narrow the search;
// the rest of the form still compiles but its detail inputs stay inert.
type filterForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	theme  Theme
}

func newFilterForm(theme Theme) filterForm {
	f := filterForm{theme: theme}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		f.inputs[i] = in
	}
	f.inputs[fieldCategory].Focus()
	return f
}

func (f *filterForm) setTheme(theme Theme) {
	f.theme = theme
}

func (f *filterForm) focusFirst() {
	f.setFocus(fieldCategory)
}

func (f *filterForm) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = (idx + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// handleKey processes one key press. The returned bool reports that the form
// was submitted.
func (f filterForm) handleKey(msg tea.KeyMsg) (filterForm, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, nil, false
	case "enter":
		return f, nil, true
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

// compile turns the form contents into a search endpoint and query params.
func (f filterForm) compile() (filter.Endpoint, url.Values) {
	label := strings.ToUpper(strings.TrimSpace(f.inputs[fieldCategory].Value()))

	st := filter.State{
		Location: filter.Location{
			CityNames:         splitList(f.inputs[fieldCity].Value()),
			DistrictNames:     splitList(f.inputs[fieldDistrict].Value()),
			NeighborhoodNames: splitList(f.inputs[fieldNeighborhood].Value()),
		},
		Price: filter.Price{
			Min: strings.TrimSpace(f.inputs[fieldMinPrice].Value()),
			Max: strings.TrimSpace(f.inputs[fieldMaxPrice].Value()),
		},
	}

	if filter.Classify(label) == filter.House {
		details := filter.HouseDetails{
			RoomCount:       strings.TrimSpace(f.inputs[fieldRoomCount].Value()),
			BathroomCount:   strings.TrimSpace(f.inputs[fieldBathroomCount].Value()),
			MinSquareMeters: strings.TrimSpace(f.inputs[fieldMinSquareMeters].Value()),
			MaxSquareMeters: strings.TrimSpace(f.inputs[fieldMaxSquareMeters].Value()),
			HeatingTypes:    splitList(f.inputs[fieldHeating].Value()),
			BuildingAges:    splitList(f.inputs[fieldBuildingAge].Value()),
		}
		if features := splitList(f.inputs[fieldFeatures].Value()); len(features) > 0 {
			details.Features = make(map[string]bool, len(features))
			for _, feature := range features {
				details.Features[feature] = true
			}
		}
		if details.RoomCount != "" || details.BathroomCount != "" ||
			details.MinSquareMeters != "" || details.MaxSquareMeters != "" ||
			len(details.HeatingTypes) > 0 || len(details.BuildingAges) > 0 ||
			len(details.Features) > 0 {
			st.Details.House = &details
		}
	}

	return filter.Compile(label, st)
}

func (f filterForm) render(width, height int) string {
	s := f.theme.Styles()

	var b strings.Builder
	b.WriteString(s.AccentText.Bold(true).Render("  Search filters"))
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := pad(filterFieldLabels[i], 14)
		if i == f.focus {
			b.WriteString(s.Selected.Render("> "))
			b.WriteString(s.Text.Bold(true).Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(s.MutedText.Render(label))
		}
		b.WriteString(f.inputs[i].View())
		if i == f.focus && filterFieldHints[i] != "" {
			b.WriteString(s.FaintText.Render("  " + filterFieldHints[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.MutedText.Render("  enter to search, esc to go back"))
	return fillLines(b.String(), height)
}

// splitList splits a comma separated input into trimmed, non-empty values.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
