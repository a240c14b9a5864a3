package zmath

// Accumulator keeps count, weighted sum and extremes of values added to it.
type Accumulator struct {
	Count       int
	SumOfWeight float64
	Sum         float64
	Min         float64
	Max         float64
}

func (a *Accumulator) Add(value float64) {
	a.AddWeighted(value, 1)
}

func (a *Accumulator) AddWeighted(value, weight float64) {
	a.Count++
	a.SumOfWeight += weight
	a.Sum += value * weight
	if a.Count == 1 || value < a.Min {
		a.Min = value
	}
	if a.Count == 1 || value > a.Max {
		a.Max = value
	}
}

// Average is the weighted mean of the values added.
func (a *Accumulator) Average() float64 {
	if a.SumOfWeight == 0 {
		return 0
	}
	return a.Sum / a.SumOfWeight
}

func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Range returns Min-Max, invalid if nothing is added.
func (a *Accumulator) Range() RangeF64 {
	if a.Count == 0 {
		return RangeF64{}
	}
	return MakeRange(a.Min, a.Max)
}
