package datagen_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services/datagen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructHistory(t *testing.T) {
	barista := newStaffMember(t, "barista@vaadin.com", identity.Barista)
	baker := newStaffMember(t, "baker@vaadin.com", identity.Baker)
	due := referenceDay
	noon := kernel.MustTimeOfDay(12, 0)

	messages := func(history []order.HistoryItem) []string {
		var out []string
		for _, h := range history {
			out = append(out, h.Message())
		}
		return out
	}
	states := func(history []order.HistoryItem) []order.State {
		var out []order.State
		for _, h := range history {
			out = append(out, h.State())
		}
		return out
	}

	t.Run("should follow the final state", func(t *testing.T) {
		tests := []struct {
			state    order.State
			messages []string
			states   []order.State
		}{
			{
				order.New,
				[]string{order.PlacedMessage},
				[]order.State{order.New},
			},
			{
				order.Confirmed,
				[]string{order.PlacedMessage, datagen.ConfirmedMessage},
				[]order.State{order.New, order.Confirmed},
			},
			{
				order.Cancelled,
				[]string{order.PlacedMessage, datagen.CancelledMessage},
				[]order.State{order.New, order.Cancelled},
			},
			{
				order.Problem,
				[]string{order.PlacedMessage, datagen.ConfirmedMessage, datagen.ProblemMessage},
				[]order.State{order.New, order.Confirmed, order.Problem},
			},
			{
				order.Ready,
				[]string{order.PlacedMessage, datagen.ConfirmedMessage, datagen.ReadyMessage},
				[]order.State{order.New, order.Confirmed, order.Ready},
			},
			{
				order.Delivered,
				[]string{order.PlacedMessage, datagen.ConfirmedMessage, datagen.ReadyMessage, datagen.DeliveredMessage},
				[]order.State{order.New, order.Confirmed, order.Ready, order.Delivered},
			},
		}

		for _, tt := range tests {
			t.Run(tt.state.String(), func(t *testing.T) {
				o := orderIn(t, tt.state, due, noon)

				history, err := datagen.ReconstructHistory(o, barista, baker, datagen.NewSource(datagen.DefaultSeed))

				require.NoError(t, err)
				assert.Equal(t, tt.messages, messages(history))
				assert.Equal(t, tt.states, states(history))
				requireNonDecreasing(t, history)
			})
		}
	})

	t.Run("should assign authors by role", func(t *testing.T) {
		for _, s := range []order.State{order.Cancelled, order.Delivered} {
			o := orderIn(t, s, due, noon)

			history, err := datagen.ReconstructHistory(o, barista, baker, datagen.NewSource(datagen.DefaultSeed))
			require.NoError(t, err)

			for _, h := range history {
				want := baker
				if h.Message() == order.PlacedMessage || h.Message() == datagen.CancelledMessage {
					want = barista
				}
				assert.Same(t, want, h.Author(), h.Message())
			}
		}
	})

	t.Run("should place orders two to six days ahead during opening hours", func(t *testing.T) {
		rng := datagen.NewSource(datagen.DefaultSeed)
		o := orderIn(t, order.New, due, noon)

		for range 500 {
			history, err := datagen.ReconstructHistory(o, barista, baker, rng)
			require.NoError(t, err)

			placed := history[0].Timestamp()
			ahead := due.Time().Sub(kernel.DateOf(placed).Time())
			assert.GreaterOrEqual(t, ahead, 2*24*time.Hour)
			assert.LessOrEqual(t, ahead, 6*24*time.Hour)
			assert.GreaterOrEqual(t, placed.Hour(), 7)
			assert.LessOrEqual(t, placed.Hour(), 16)
			assert.Zero(t, placed.Minute())
		}
	})

	t.Run("should keep timestamps ordered for every state and due time", func(t *testing.T) {
		rng := datagen.NewSource(7)

		for _, s := range order.States() {
			for _, hour := range []int{8, 12, 16} {
				o := orderIn(t, s, due, kernel.MustTimeOfDay(hour, 0))
				for range 200 {
					history, err := datagen.ReconstructHistory(o, barista, baker, rng)
					require.NoError(t, err)
					requireNonDecreasing(t, history)
					assert.Equal(t, s, history[len(history)-1].State())
				}
			}
		}
	})

	t.Run("should cancel before the due time", func(t *testing.T) {
		rng := datagen.NewSource(11)
		o := orderIn(t, order.Cancelled, due, kernel.MustTimeOfDay(8, 0))

		for range 500 {
			history, err := datagen.ReconstructHistory(o, barista, baker, rng)
			require.NoError(t, err)

			cancelled := history[1].Timestamp()
			assert.True(t, cancelled.Before(o.DueAt()), "cancelled at %s", cancelled)
			assert.Equal(t, history[0].Timestamp().Hour(), cancelled.Hour())
		}
	})

	t.Run("should deliver within two hours before the due time", func(t *testing.T) {
		rng := datagen.NewSource(13)
		o := orderIn(t, order.Delivered, due, kernel.MustTimeOfDay(16, 0))

		for range 500 {
			history, err := datagen.ReconstructHistory(o, barista, baker, rng)
			require.NoError(t, err)

			delivered := history[3].Timestamp()
			assert.False(t, delivered.After(o.DueAt()))
			assert.Less(t, o.DueAt().Sub(delivered), 2*time.Hour)
		}
	})

	t.Run("should be reproducible from equal seed state", func(t *testing.T) {
		synth := newSynthesizer(t, datagen.NewSource(datagen.DefaultSeed))
		o, err := synth.Synthesize(referenceDay.AddDays(-3), referenceDay)
		require.NoError(t, err)

		first, err := datagen.ReconstructHistory(o, barista, baker, datagen.NewSource(99))
		require.NoError(t, err)
		second, err := datagen.ReconstructHistory(o, barista, baker, datagen.NewSource(99))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should require authors", func(t *testing.T) {
		o := orderIn(t, order.Delivered, due, noon)

		_, err := datagen.ReconstructHistory(o, barista, nil, datagen.NewSource(1))

		require.ErrorIs(t, err, order.ErrHistoryAuthorIsRequired)
	})
}
