package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBlindScheduleValidation(t *testing.T) {
	t.Parallel()

	_, err := NewBlindSchedule(nil)
	require.Error(t, err)

	_, err = NewBlindSchedule([]BlindLevel{{SmallBlind: 0, BigBlind: 20, HandsPerLevel: 5}})
	require.Error(t, err)

	_, err = NewBlindSchedule([]BlindLevel{{SmallBlind: 20, BigBlind: 20, HandsPerLevel: 5}})
	require.Error(t, err)

	_, err = NewBlindSchedule([]BlindLevel{{SmallBlind: 10, BigBlind: 20, HandsPerLevel: 0}})
	require.Error(t, err)

	s, err := NewBlindSchedule([]BlindLevel{{SmallBlind: 10, BigBlind: 20, HandsPerLevel: 5}})
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestBlindScheduleEscalation(t *testing.T) {
	t.Parallel()

	s, err := NewBlindSchedule([]BlindLevel{
		{SmallBlind: 10, BigBlind: 20, HandsPerLevel: 5},
		{SmallBlind: 15, BigBlind: 30, HandsPerLevel: 5},
		{SmallBlind: 25, BigBlind: 50, HandsPerLevel: 5},
	})
	require.NoError(t, err)

	s.StartNewGame()

	// Hands 1..5 play level 0, hand 6 is the first at level 1.
	for hand := 1; hand <= 5; hand++ {
		s.AdvanceHand()
		require.Equal(t, 0, s.CurrentLevelIndex(), "hand %d", hand)
	}
	s.AdvanceHand()
	require.Equal(t, 1, s.CurrentLevelIndex())
	sb, bb := s.CurrentBlinds()
	require.Equal(t, 15, sb)
	require.Equal(t, 30, bb)
}

func TestBlindScheduleFinalLevelIsFloor(t *testing.T) {
	t.Parallel()

	s, err := NewBlindSchedule([]BlindLevel{
		{SmallBlind: 10, BigBlind: 20, HandsPerLevel: 2},
		{SmallBlind: 20, BigBlind: 40, HandsPerLevel: 2},
	})
	require.NoError(t, err)

	s.StartNewGame()
	for hand := 0; hand < 50; hand++ {
		s.AdvanceHand()
	}
	require.Equal(t, 1, s.CurrentLevelIndex())
	sb, bb := s.CurrentBlinds()
	require.Equal(t, 20, sb)
	require.Equal(t, 40, bb)
}

func TestBlindScheduleResetsWithNewGame(t *testing.T) {
	t.Parallel()

	s, err := NewBlindSchedule([]BlindLevel{
		{SmallBlind: 10, BigBlind: 20, HandsPerLevel: 1},
		{SmallBlind: 15, BigBlind: 30, HandsPerLevel: 1},
	})
	require.NoError(t, err)

	s.StartNewGame()
	s.AdvanceHand()
	s.AdvanceHand()
	require.Equal(t, 1, s.CurrentLevelIndex())

	s.StartNewGame()
	s.AdvanceHand()
	require.Equal(t, 0, s.CurrentLevelIndex())
}

func TestDefaultBlindScheduleLadder(t *testing.T) {
	t.Parallel()

	s, err := DefaultBlindSchedule(10, 20, 5, 4, 1.5)
	require.NoError(t, err)

	levels := s.Levels()
	require.Len(t, levels, 4)
	require.Equal(t, BlindLevel{10, 20, 5}, levels[0])
	require.Equal(t, BlindLevel{15, 30, 5}, levels[1])
	require.Equal(t, BlindLevel{25, 45, 5}, levels[2])
	require.Equal(t, BlindLevel{35, 70, 5}, levels[3])

	for i, l := range levels {
		require.Greater(t, l.BigBlind, l.SmallBlind, "level %d", i)
		require.Zero(t, l.SmallBlind%5, "level %d small blind not a multiple of 5", i)
		require.Zero(t, l.BigBlind%5, "level %d big blind not a multiple of 5", i)
	}
}

func TestDefaultBlindScheduleRejectsBadInputs(t *testing.T) {
	t.Parallel()

	_, err := DefaultBlindSchedule(0, 20, 5, 10, 1.5)
	require.Error(t, err)
	_, err = DefaultBlindSchedule(20, 10, 5, 10, 1.5)
	require.Error(t, err)
	_, err = DefaultBlindSchedule(10, 20, 0, 10, 1.5)
	require.Error(t, err)
	_, err = DefaultBlindSchedule(10, 20, 5, 0, 1.5)
	require.Error(t, err)
	_, err = DefaultBlindSchedule(10, 20, 5, 10, 1.0)
	require.Error(t, err)
}
