package depthcachev1

import "context"

// Cache defines the interface for storing and loading the live depth view.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=depthcachev1_mock
type Cache interface {
	Store(ctx context.Context, snapshot *DepthSnapshot) error
	Load(ctx context.Context) (*DepthSnapshot, error)
}
