package dashboard

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewHelp
	ViewConfirm
)
