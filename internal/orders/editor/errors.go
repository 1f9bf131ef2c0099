package editor

// ValidationCode identifies why a draft cannot be submitted.
type ValidationCode string

const (
	MissingParty       ValidationCode = "MissingParty"
	MissingOrderNumber ValidationCode = "MissingOrderNumber"
	NoValidItems       ValidationCode = "NoValidItems"
)

// ValidationError blocks a submit locally, before any network call.
type ValidationError struct {
	Code ValidationCode
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case MissingParty:
		return "Please select a party"
	case MissingOrderNumber:
		return "Order number is required"
	case NoValidItems:
		return "Please add at least one item with quantity"
	}
	return "order is not valid for submission"
}
