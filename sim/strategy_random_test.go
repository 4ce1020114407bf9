package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_AssignsEveryItemToSomeHost(t *testing.T) {
	items, hosts := testPopulations()
	rng := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemPlacement)

	assignment := NewRandomStrategy(rng).Decide(0, items, hosts, nil)

	require.Len(t, assignment, len(items))
	hostIDs := map[string]bool{"h1": true, "h2": true}
	for itemID, hostID := range assignment {
		if !hostIDs[hostID] {
			t.Errorf("item %s assigned to unknown host %s", itemID, hostID)
		}
	}
}

func TestRandom_FixedSeedReproducesAssignments(t *testing.T) {
	items, hosts := testPopulations()

	a1 := NewRandomStrategy(NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemPlacement)).
		Decide(0, items, hosts, nil)
	a2 := NewRandomStrategy(NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemPlacement)).
		Decide(0, items, hosts, nil)

	assert.Equal(t, a1, a2)
}

func TestRandom_NoHosts_AllUnassigned(t *testing.T) {
	items, _ := testPopulations()
	rng := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemPlacement)

	assignment := NewRandomStrategy(rng).Decide(0, items, nil, nil)
	assert.Empty(t, assignment)
}

func TestNewStrategy_Factory(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(1)).ForSubsystem(SubsystemPlacement)

	for _, name := range AvailableStrategies() {
		s, err := NewStrategy(name, rng)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := NewStrategy("round_robin", rng)
	assert.Error(t, err)
}

func TestAvailableStrategies_CanonicalOrder(t *testing.T) {
	assert.Equal(t, []string{StrategyGameTheory, StrategyGreedy, StrategyRandom}, AvailableStrategies())
}
