package sim

// Domain labels for the two entity flavors. They share one data model; the
// label only drives naming and scenario defaults.
const (
	DomainSensor = "sensor"
	DomainEdge   = "edge"
)

const (
	// TrustFloor and TrustCeiling bound every work item's trust score.
	TrustFloor   = 0.1
	TrustCeiling = 1.0

	// defaultWeightLatency/Energy are the utility coefficients shared by all
	// work items.
	defaultWeightLatency = 0.8
	defaultWeightEnergy  = 0.2

	// defaultLoadBalancingWeight scales the quadratic load penalty in host
	// utility.
	defaultLoadBalancingWeight = 1.5

	// minCapacity replaces non-positive host capacities.
	minCapacity = 0.5
)

// WorkItem is a unit of demand to be placed on a host. Demand is the primary
// resource dimension and drives all load arithmetic; MemoryDemand is a
// secondary dimension carried for edge-flavor scenarios but not load-bearing.
type WorkItem struct {
	ID           string
	Domain       string
	Demand       float64
	MemoryDemand float64

	WeightLatency float64
	WeightEnergy  float64

	Deadline  float64
	Malicious bool

	TrustScore            float64
	ConsecutiveRejections int
}

// NewWorkItem creates a work item. Honest items start at full trust, malicious
// items at the floor.
func NewWorkItem(id, domain string, demand, memoryDemand, deadline float64, malicious bool) *WorkItem {
	trust := TrustCeiling
	if malicious {
		trust = TrustFloor
	}
	return &WorkItem{
		ID:            id,
		Domain:        domain,
		Demand:        demand,
		MemoryDemand:  memoryDemand,
		WeightLatency: defaultWeightLatency,
		WeightEnergy:  defaultWeightEnergy,
		Deadline:      deadline,
		Malicious:     malicious,
		TrustScore:    trust,
	}
}

// Utility scores a (latency, energy) cost pair from the item's perspective.
// Always non-positive for non-negative costs; higher is better.
func (w *WorkItem) Utility(latency, energy float64) float64 {
	return -(w.WeightLatency*latency + w.WeightEnergy*energy)
}

// Clone returns an independent copy of the work item.
func (w *WorkItem) Clone() *WorkItem {
	c := *w
	return &c
}

// Host is a capacity-bounded placement target. Hosted is replaced wholesale
// once per iteration by the engine; nothing else writes it.
type Host struct {
	ID             string
	Domain         string
	Capacity       float64
	MemoryCapacity float64

	Hosted []*WorkItem

	LoadBalancingWeight float64
}

// NewHost creates a host. Non-positive capacities are clamped to the minimum
// default rather than rejected.
func NewHost(id, domain string, capacity, memoryCapacity float64) *Host {
	if capacity <= 0 {
		capacity = minCapacity
	}
	if memoryCapacity <= 0 {
		memoryCapacity = minCapacity
	}
	return &Host{
		ID:                  id,
		Domain:              domain,
		Capacity:            capacity,
		MemoryCapacity:      memoryCapacity,
		LoadBalancingWeight: defaultLoadBalancingWeight,
	}
}

// CurrentLoad is the hosted demand as a fraction of capacity. May exceed 1;
// oversubscription is penalized by Utility, not forbidden.
func (h *Host) CurrentLoad() float64 {
	if h.Capacity == 0 || len(h.Hosted) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range h.Hosted {
		total += item.Demand
	}
	return total / h.Capacity
}

// Utility scores a candidate hosted set: average trust of the candidates minus
// a quadratic load penalty. The empty set scores 0.
func (h *Host) Utility(candidates []*WorkItem) float64 {
	if len(candidates) == 0 {
		return 0
	}
	totalDemand, totalTrust := 0.0, 0.0
	for _, item := range candidates {
		totalDemand += item.Demand
		totalTrust += item.TrustScore
	}
	load := totalDemand / h.Capacity
	avgTrust := totalTrust / float64(len(candidates))
	return avgTrust - h.LoadBalancingWeight*load*load
}

// Clone returns a copy of the host with an empty hosted set. Callers that need
// hosted items remapped onto cloned work items do so themselves (see
// clonePopulation in simulation.go).
func (h *Host) Clone() *Host {
	c := *h
	c.Hosted = nil
	return &c
}
