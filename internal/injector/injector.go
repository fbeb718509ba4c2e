//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/btree/internal/config"
	"github.com/zeusync/btree/internal/core/bt"
)

func InitializeRuntime(cfg config.Config, spec *bt.TreeSpec) (*Runtime, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
