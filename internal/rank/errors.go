package rank

// RankError is a custom error type for ranking and bid errors
type RankError string

// Error implements the error interface
func (e RankError) Error() string {
	return string(e)
}

const (
	ErrSlotNotFound RankError = "slot not found"
	ErrInvalidUnit  RankError = "bid unit must be positive"
)
