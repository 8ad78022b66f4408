//go:build !http_enabled

package main

import (
	"github.com/google/uuid"
)

// Without the http_enabled tag nothing leaves the machine. Development builds
// and tests use this.

func InitializeIdInDbHttp(user string, releaseVersion, simulationVersion,
	inputVersion int64, id uuid.UUID) {
}

func UploadDataToDbHttp(user string, releaseVersion, simulationVersion,
	inputVersion int64, id uuid.UUID, data []byte) {
}
