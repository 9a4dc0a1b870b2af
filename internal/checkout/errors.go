package checkout

import "errors"

// Stage errors wrap the underlying collaborator failure so callers can
// tell which step of the saga failed. None of these are retried here;
// retry belongs to the collaborator's own client or transport.
var (
	ErrCartUnavailable = errors.New("cart unavailable")
	ErrProductLookup   = errors.New("product lookup failed")
	ErrPaymentDeclined = errors.New("payment declined")
	ErrShippingFailed  = errors.New("shipping failed")
)
