package imgfx

// Negate inverts the colour channels of img in place: each of R, G and B
// becomes 255 minus its value. Alpha is left unchanged, so applying Negate
// twice restores the original bytes.
//
// Negate returns ErrInvalidImage for a nil or empty image and does not
// touch it in that case.
func Negate(img *Image) error {
	if img.IsEmpty() {
		return ErrInvalidImage
	}
	pix := img.pix
	for i := 0; i+3 < len(pix); i += bytesPerPixel {
		pix[i+0] = 255 - pix[i+0]
		pix[i+1] = 255 - pix[i+1]
		pix[i+2] = 255 - pix[i+2]
	}
	return nil
}
