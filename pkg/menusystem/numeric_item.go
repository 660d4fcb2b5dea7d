package menusystem

import "strconv"

// FormatFunc maps a numeric value to display text.
type FormatFunc func(value float64) string

// NumericItem is a leaf holding a bounded numeric value. Next and Prev step
// the value by a fixed increment instead of moving a cursor, clamping at
// the bounds or wrapping around them when loop is enabled. Selecting it
// invokes the stored callback, which typically reads Value.
type NumericItem struct {
	component

	value     float64
	minValue  float64
	maxValue  float64
	increment float64
	formatFn  FormatFunc
}

// NewNumericItem creates a numeric item stepping by increment within
// [minValue, maxValue]. The starting value is clamped into the bounds.
// fn may be nil.
func NewNumericItem(name, icon string, fn SelectFunc, value, minValue, maxValue, increment float64) *NumericItem {
	n := &NumericItem{
		component: component{name: name, icon: icon, selectFn: fn},
		minValue:  minValue,
		maxValue:  maxValue,
		increment: increment,
	}
	n.value = n.clamp(value)
	return n
}

// Value returns the current value.
func (n *NumericItem) Value() float64 { return n.value }

// MinValue returns the lower bound.
func (n *NumericItem) MinValue() float64 { return n.minValue }

// MaxValue returns the upper bound.
func (n *NumericItem) MaxValue() float64 { return n.maxValue }

// Increment returns the step applied by Next and Prev.
func (n *NumericItem) Increment() float64 { return n.increment }

// SetValue sets the value, clamped into [MinValue, MaxValue].
func (n *NumericItem) SetValue(value float64) { n.value = n.clamp(value) }

// SetMinValue moves the lower bound and re-clamps the value.
func (n *NumericItem) SetMinValue(minValue float64) {
	n.minValue = minValue
	n.value = n.clamp(n.value)
}

// SetMaxValue moves the upper bound and re-clamps the value.
func (n *NumericItem) SetMaxValue(maxValue float64) {
	n.maxValue = maxValue
	n.value = n.clamp(n.value)
}

// SetFormatter installs a custom value formatter. A nil formatter restores
// the default plain numeric conversion.
func (n *NumericItem) SetFormatter(fn FormatFunc) { n.formatFn = fn }

// FormattedValue returns the value as display text, through the installed
// formatter when one is set.
func (n *NumericItem) FormattedValue() string {
	if n.formatFn != nil {
		return n.formatFn(n.value)
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

// Next steps the value up by the increment. Past MaxValue the value wraps
// to MinValue when loop is enabled, otherwise it clamps at MaxValue.
// Reports whether the value changed.
func (n *NumericItem) Next(loop bool) bool {
	prev := n.value
	next := n.value + n.increment
	if next > n.maxValue {
		if loop {
			next = n.minValue
		} else {
			next = n.maxValue
		}
	}
	n.value = next
	return n.value != prev
}

// Prev steps the value down by the increment, the mirror image of Next.
func (n *NumericItem) Prev(loop bool) bool {
	prev := n.value
	next := n.value - n.increment
	if next < n.minValue {
		if loop {
			next = n.maxValue
		} else {
			next = n.minValue
		}
	}
	n.value = next
	return n.value != prev
}

// Reset is a no-op: the value and bounds persist across menu resets.
func (n *NumericItem) Reset() {}

// Render dispatches to the renderer's numeric item entry point.
func (n *NumericItem) Render(r Renderer) { r.RenderNumericItem(n) }

func (n *NumericItem) activate() Selection {
	n.fireSelect(n)
	return Selection{Action: SelectionStay}
}

func (n *NumericItem) clamp(v float64) float64 {
	if v < n.minValue {
		return n.minValue
	}
	if v > n.maxValue {
		return n.maxValue
	}
	return v
}
