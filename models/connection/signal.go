package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// Read a single cell
	CodeGetCell

	// Overwrite a single cell
	CodeSetCell

	// Whole board as text
	CodeRender

	// Back to the starting layout
	CodeResetBoard

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code *uint8 `json:"code"`
}
