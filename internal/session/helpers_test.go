package session

import "github.com/pixil98/go-overlook/internal/storage"

func storageId(s string) storage.Identifier {
	return storage.Identifier(s)
}
