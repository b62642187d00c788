package sim

// Components hold the mutable per-instance state of the simulation, keyed
// by blueprint identifier. They are owned exclusively by the engine worker;
// nothing outside the worker goroutine ever touches one.

// resourceComponent is the live amount of one resource.
type resourceComponent struct {
	value float64
}

// upgradeComponent is the current level of one upgradable generator.
// The level never decreases and grows by exactly 1 per purchase.
type upgradeComponent struct {
	level int
}
