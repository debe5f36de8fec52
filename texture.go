package photowall

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for photo assets
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// placeholderEdge is the edge length of the magenta stand-in texture.
const placeholderEdge = 16

// LoadTextures decodes every image in refs from fsys once. Each photo is
// center-cropped to a square and, when larger than maxEdge pixels, resampled
// down to maxEdge (maxEdge <= 0 keeps the original size). Images that fail to
// load are logged and replaced by a magenta placeholder so the wall still
// builds.
func LoadTextures(fsys fs.FS, refs []ImageRef, maxEdge int) map[ImageRef]*ebiten.Image {
	out := make(map[ImageRef]*ebiten.Image, len(refs))
	var placeholder *ebiten.Image
	for _, ref := range refs {
		if _, ok := out[ref]; ok {
			continue
		}
		img, err := loadTexture(fsys, ref, maxEdge)
		if err != nil {
			log.Printf("photowall: texture %q: %v, using magenta placeholder", ref, err)
			if placeholder == nil {
				placeholder = ebiten.NewImage(placeholderEdge, placeholderEdge)
				placeholder.Fill(ColorMagenta.toRGBA())
			}
			out[ref] = placeholder
			continue
		}
		out[ref] = ebiten.NewImageFromImage(img)
	}
	return out
}

func loadTexture(fsys fs.FS, ref ImageRef, maxEdge int) (image.Image, error) {
	f, err := fsys.Open(refPath(ref))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeTexture(f, maxEdge)
}

// refPath turns an ImageRef into an fs.FS path. Refs are usually written
// web-style with a leading slash.
func refPath(ref ImageRef) string {
	return path.Clean(strings.TrimPrefix(string(ref), "/"))
}

// decodeTexture decodes r and returns a square RGBA image of at most maxEdge
// pixels per side.
func decodeTexture(r io.Reader, maxEdge int) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return squareTexture(src, maxEdge)
}

// squareTexture center-crops src to a square and scales it to fit maxEdge.
func squareTexture(src image.Image, maxEdge int) (*image.RGBA, error) {
	b := src.Bounds()
	edge := min(b.Dx(), b.Dy())
	if edge <= 0 {
		return nil, fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())
	}
	crop := image.Rect(0, 0, edge, edge).Add(image.Pt(
		b.Min.X+(b.Dx()-edge)/2,
		b.Min.Y+(b.Dy()-edge)/2,
	))

	out := edge
	if maxEdge > 0 && out > maxEdge {
		out = maxEdge
	}
	dst := image.NewRGBA(image.Rect(0, 0, out, out))
	if out == edge {
		draw.Draw(dst, dst.Bounds(), src, crop.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	}
	return dst, nil
}

// ListImages returns the .jpg, .jpeg and .png files directly inside dir of
// fsys, sorted by name.
func ListImages(fsys fs.FS, dir string) ([]ImageRef, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	var refs []ImageRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png":
			refs = append(refs, ImageRef(path.Join(dir, e.Name())))
		}
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("list images: %w in %q", ErrNoImages, dir)
	}
	return refs, nil
}
