package weights

// Constant sets the first slot of every bucket to w.
func Constant(w Weight) Initializer {
	return func(it *Iterator, _, _ uint64) {
		it.Set(w)
	}
}

// Slots writes values to the first len(values) slots of every bucket, for
// example a weight and the starting value of its adaptive learning rate.
// Values beyond the stride are ignored.
func Slots(values ...Weight) Initializer {
	return func(it *Iterator, _, stride uint64) {
		n := min(uint64(len(values)), stride)
		end := it.End(n)
		i := 0
		for s := it.Begin(); !s.Equal(end); s.Next() {
			s.Set(values[i])
			i++
		}
	}
}

// RandomUniform sets the first slot of every bucket to a value drawn from
// [-scale/2, scale/2). The value depends only on seed and the bucket's
// index, so every process computes the same table.
func RandomUniform(seed uint64, scale float32) Initializer {
	return func(it *Iterator, index, _ uint64) {
		it.Set((unitFloat(seed, index) - 0.5) * scale)
	}
}

// RandomPositive sets the first slot of every bucket to a value drawn from
// [0, scale), deterministic in seed and the bucket's index.
func RandomPositive(seed uint64, scale float32) Initializer {
	return func(it *Iterator, index, _ uint64) {
		it.Set(unitFloat(seed, index) * scale)
	}
}

// Chain runs inits in order on each bucket. Nil entries are skipped.
func Chain(inits ...Initializer) Initializer {
	return func(it *Iterator, index, stride uint64) {
		for _, fn := range inits {
			if fn == nil {
				continue
			}
			cur := *it
			fn(&cur, index, stride)
		}
	}
}

// unitFloat maps (seed, index) to [0, 1) using splitmix64 finalizers.
func unitFloat(seed, index uint64) float32 {
	z := splitmix64(seed ^ splitmix64(index))
	return float32(z>>40) / (1 << 24)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
