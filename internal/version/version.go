// Package version exposes the application version, overridable at build time:
//
//	go build -ldflags "-X github.com/ndewijer/Brokerage-Backoffice-Backend/internal/version.Version=1.2.0"
package version

// Version is the running application version.
var Version = "dev"
