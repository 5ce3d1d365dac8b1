package models

// Page sizes and orientations supported by the renderer.
const (
	PageA4     = "A4"
	PageLetter = "Letter"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Font size bounds for rendered output, in points.
const (
	MinFontSize = 6
	MaxFontSize = 12
)

// RenderSettings controls document layout. It is a value type: callers
// build a new value for every settings change instead of mutating one in
// place, so a report can be rendered repeatedly with different settings
// without interference.
type RenderSettings struct {
	PageSize       string
	Orientation    string
	FontSize       int
	VisibleColumns []string
	AutoFilename   bool
}

// DefaultSettings returns the stock layout: A4 portrait at 7pt with the
// seven standard transaction columns.
func DefaultSettings() RenderSettings {
	return RenderSettings{
		PageSize:    PageA4,
		Orientation: OrientationPortrait,
		FontSize:    7,
		VisibleColumns: []string{
			ColDate, ColTime, ColMarketName, ColSwishNumber,
			ColName, ColMobileNumber, ColAmount,
		},
		AutoFilename: true,
	}
}

// WithColumns returns a copy of the settings showing only the given columns.
func (s RenderSettings) WithColumns(cols []string) RenderSettings {
	s.VisibleColumns = append([]string(nil), cols...)
	return s
}
