package esign

// Party identifies one signer on the agreement.
type Party struct {
	Name  string
	Email string
}

// Sender routes a generated agreement to both parties for e-signature.
// Dispatch is synchronous; callers treat failure as non-fatal to the
// surrounding purchase and only log it.
type Sender interface {
	SendForSignature(documentPath string, seller, buyer Party) error
}
