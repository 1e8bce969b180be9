package catalog

// Defaults returns the built-in startup catalog. Each call returns a fresh slice.
func Defaults() []Item {
	return []Item{
		{
			Logo:        "./assets/images/logo-devlens.svg",
			Name:        "DevLens",
			Description: "Quickly inspect page layouts and visualize element boundaries.",
			IsActive:    true,
		},
		{
			Logo:        "./assets/images/logo-style-spy.svg",
			Name:        "StyleSpy",
			Description: "Instantly analyze and copy CSS from any webpage element.",
			IsActive:    true,
		},
		{
			Logo:        "./assets/images/logo-speed-boost.svg",
			Name:        "SpeedBoost",
			Description: "Optimizes browser resource usage to accelerate page loading.",
			IsActive:    false,
		},
		{
			Logo:        "./assets/images/logo-json-wizard.svg",
			Name:        "JSONWizard",
			Description: "Formats, validates, and prettifies JSON responses in-browser.",
			IsActive:    true,
		},
		{
			Logo:        "./assets/images/logo-tab-master-pro.svg",
			Name:        "TabMaster Pro",
			Description: "Organizes browser tabs into groups and sessions.",
			IsActive:    true,
		},
		{
			Logo:        "./assets/images/logo-viewport-buddy.svg",
			Name:        "ViewportBuddy",
			Description: "Simulates various screen resolutions directly within the browser.",
			IsActive:    false,
		},
		{
			Logo:        "./assets/images/logo-markup-notes.svg",
			Name:        "Markup Notes",
			Description: "Enables annotation and notes directly onto webpages for collaborative debugging.",
			IsActive:    true,
		},
		{
			Logo:        "./assets/images/logo-grid-guides.svg",
			Name:        "GridGuides",
			Description: "Overlay customizable grids and alignment guides on any webpage.",
			IsActive:    false,
		},
		{
			Logo:        "./assets/images/logo-palette-picker.svg",
			Name:        "Palette Picker",
			Description: "Instantly extracts color palettes from any webpage.",
			IsActive:    true,
		},
		{
			Logo:        "./assets/images/logo-link-checker.svg",
			Name:        "LinkChecker",
			Description: "Scans and highlights broken links on any page.",
			IsActive:    true,
		},
		{
			Logo:        "./assets/images/logo-dom-snapshot.svg",
			Name:        "DOM Snapshot",
			Description: "Capture and export DOM structures quickly.",
			IsActive:    false,
		},
		{
			Logo:        "./assets/images/logo-console-plus.svg",
			Name:        "ConsolePlus",
			Description: "Enhanced developer console with advanced filtering and logging.",
			IsActive:    true,
		},
	}
}
