package script

import (
	"hop.computer/lists/pkg/readers"
)

// Generate returns n pseudo-random ops drawn from the seed. The same seed always
// yields the same ops. Generated scripts only use commands that cannot fault.
func Generate(seed uint64, n int) []Op {
	src := readers.NewSource(seed)
	front := readers.NewDeterministicCoinFlipper(seed^0x5eed, 1)
	ops := make([]Op, 0, n)
	for i := 0; i < n; i++ {
		atFront := front.Flip()
		var op Op
		switch src.Intn(5) {
		case 0, 4:
			op = Op{Kind: pick(atFront, PushFront, PushBack), Arg: src.Intn(1000)}
		case 1:
			op = Op{Kind: pick(atFront, PopFront, PopBack)}
		case 2:
			op = Op{Kind: pick(atFront, PeekFront, PeekBack)}
		case 3:
			op = Op{Kind: pick(atFront, SetFront, SetBack), Arg: src.Intn(1000)}
		}
		ops = append(ops, op)
	}
	return ops
}

func pick(atFront bool, front, back Kind) Kind {
	if atFront {
		return front
	}
	return back
}
