package ports

// Progress creates progress handles for long running work.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	// Start begins reporting progress under caption.
	Start(caption string) ProgressHandle
}

// ProgressHandle receives free text updates for one unit of work.
type ProgressHandle interface {
	Progress(text string)
	Finish(err error)
}
