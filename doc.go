// Package cardtable is an interactive card layout for [Ebitengine]: cards rest
// on fixed placeholder slots and can be dragged from one slot to another.
//
// # Quick start
//
// Build a [Table] from a [Config] and hand it to [Run], which opens a window
// and drives the game loop:
//
//	table, err := cardtable.NewTable(cardtable.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	cardtable.Run(table, cardtable.RunConfig{Title: "Cards", Width: 640, Height: 480})
//
// For full control, wrap the table with [NewGame] and run it yourself, or
// call [Table.Update] and [Table.Resize] from your own [ebiten.Game].
//
// # Drag and drop
//
// Pressing on a card starts a drag session in the [DragController]. While the
// pointer moves, the card's position is written at most once per refresh
// through a [Throttle]. Independently, an [IntersectionScanner] checks ten
// times a second which slot the card overlaps and emits [DragEnter] and
// [DragLeave] on the [Bus], highlighting the slot under the card. On release
// the scanner is stopped and a single [DragEnded] names the drop target: the
// slot last overlapped, otherwise the slot the card started on.
//
// The table reacts to [DragEnded] by reassigning the card and asking the
// card's [Choreographer] to fly it from the release position into its slot.
// The choreographer writes the old position unanimated on one refresh and the
// new position, animated by a gween tween, on the next.
//
// # Time
//
// Everything time-based runs on a [FrameClock]. [FrameScheduler] implements it
// with explicit Tick calls; [Game] ticks it once per Ebitengine update and
// tests tick it by hand.
//
// # Configuration
//
// Tables are described in YAML, see [ParseConfig] and [LoadConfig]. Durations
// use Go syntax ("250ms") and easing functions are named after
// [github.com/tanema/gween/ease].
//
// [Ebitengine]: https://ebitengine.org
package cardtable
