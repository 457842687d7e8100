package twist

// genBitSquatting flips each of the 8 bits of every byte in label, keeping
// only results whose flipped byte stays within the LDH alphabet.
func genBitSquatting(label string, add func(string)) {
	for i := 0; i < len(label); i++ {
		original := label[i]
		for bit := 0; bit < 8; bit++ {
			flipped := original ^ (1 << uint(bit))
			if !isLDHByte(flipped) {
				continue
			}
			add(label[:i] + string(flipped) + label[i+1:])
		}
	}
}

func isLDHByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '-'
}
