package catalog

import (
	"fmt"
	"sync"

	"scmock/common"
)

// Factory hands out the registry for an (account, region) pair, creating it
// on first use. Registries never expire.
type Factory struct {
	partition   string
	provisioner common.StackProvisioner
	fetcher     common.TemplateFetcher
	tagger      common.TagManager

	mutex      sync.Mutex
	registries map[string]*Registry
}

// NewFactory creates a registry factory over the context's collaborators
func NewFactory(ctx *common.Context) *Factory {
	return &Factory{
		partition:   ctx.Config.Partition,
		provisioner: ctx.StackProvisioner,
		fetcher:     ctx.TemplateFetcher,
		tagger:      ctx.TagManager,
		registries:  map[string]*Registry{},
	}
}

// Registry returns the registry for the (account, region) pair
func (f *Factory) Registry(accountID string, region string) *Registry {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	key := fmt.Sprintf("%s/%s", accountID, region)
	registry, ok := f.registries[key]
	if !ok {
		registry = newRegistry(accountID, region, f.partition, f.provisioner, f.fetcher, f.tagger)
		f.registries[key] = registry
		log.Debugf("created registry for account %s in %s", accountID, region)
	}
	return registry
}
