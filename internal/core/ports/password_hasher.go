package ports

// PasswordHasher turns a plaintext password into an opaque, storable hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}
