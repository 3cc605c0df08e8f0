package errors

var (
	// Domain errors — used in usecase/repository
	ErrNoIdentity              = NotFound("no identity registered for target user")
	ErrInvalidPreKeySignature  = InvalidArg("signed prekey signature does not verify against identity key")
	ErrDuplicatePreKeyID       = InvalidArg("duplicate one-time prekey ID in upload")
	ErrInvalidIdentityKey      = InvalidArg("identity public key must be 32 bytes")
	ErrInvalidSignedPreKey     = InvalidArg("signed prekey public key must be 32 bytes")
	ErrInvalidOneTimePreKey    = InvalidArg("one-time prekey public key must be 32 bytes")
	ErrBackupNotFound          = NotFound("no private key backup stored for user")
	ErrEmptyBackupField        = InvalidArg("backup ciphertext fields must all be present")
	ErrMessageNotFound         = NotFound("message not found")
	ErrNotMessageSender        = Forbidden("only the original sender may delete a message")
	ErrEmptyEnvelope           = InvalidArg("both receiver and self envelopes must be complete")
	ErrStorageUnavailable      = Unavailable("storage temporarily unavailable, retry the operation")
)

func ErrBundleClaimFailed(cause error) error {
	return Wrap(CodeUnavailable, "failed to claim prekey bundle", cause)
}

func ErrBundleRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "bundle registration failed", cause)
}
