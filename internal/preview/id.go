package preview

import "github.com/google/uuid"

func newOpaqueID() string {
	return uuid.NewString()
}
