package common

import "context"

// Command interface is used for management platform command executors
type Command interface {
	Name() string
	Exec(data []byte) error
}

// Service interface describes background running instances.
// Run must not block: it starts the work and returns, the work itself
// terminates when ctx is cancelled.
type Service interface {
	Name() string
	Run(ctx context.Context) error
}

// Controller is the agent side of the management platform connection
type Controller interface {
	Recv() ([]byte, error)
	Write(b []byte) (n int, err error)
	Close() error
}
