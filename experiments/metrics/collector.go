package metrics

// StepRecord is one row of simulation output: which arm a strategy chose at a
// time step, what it paid, and the running total for that simulation.
type StepRecord struct {
	Sim        int
	Step       int
	ChosenArm  int
	Reward     float64
	Cumulative float64
}

// StrategyConfig identifies one strategy variant in an experiment. Parameter
// fields are zero for variants that do not use them.
type StrategyConfig struct {
	ID           int
	Name         string
	Epsilon      float64
	Tau          float64
	LearningRate float64
	Alpha        float64
	Beta         float64
}

// Collector accumulates step records across simulations, tracking the
// cumulative reward within the current simulation.
type Collector struct {
	records    []StepRecord
	sim        int
	cumulative float64
}

func NewCollector() *Collector {
	return &Collector{}
}

// StartSim begins a new simulation: the cumulative reward restarts at zero.
func (c *Collector) StartSim(sim int) {
	c.sim = sim
	c.cumulative = 0
}

// Record appends one step of the current simulation.
func (c *Collector) Record(step, chosenArm int, reward float64) {
	c.cumulative += reward
	c.records = append(c.records, StepRecord{
		Sim:        c.sim,
		Step:       step,
		ChosenArm:  chosenArm,
		Reward:     reward,
		Cumulative: c.cumulative,
	})
}

// Records returns a copy of all collected rows in insertion order.
func (c *Collector) Records() []StepRecord {
	records := make([]StepRecord, len(c.records))
	copy(records, c.records)
	return records
}
