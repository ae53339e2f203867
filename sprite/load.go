package sprite

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Descriptor is the YAML content of a .sprite file. Image is resolved
// relative to the descriptor's directory.
type Descriptor struct {
	Image   string `yaml:"image"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

// ReadDescriptor parses the .sprite file at name.
func ReadDescriptor(fsys fs.FS, name string) (Descriptor, error) {
	var d Descriptor
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return d, fmt.Errorf("failed to read sprite %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse sprite %s: %w", name, err)
	}
	if d.Image == "" {
		return d, fmt.Errorf("sprite %s: no image", name)
	}
	if d.Rows == 0 {
		d.Rows = 1
	}
	return d, nil
}

// Load reads a .sprite descriptor and the image it names.
func Load(fsys fs.FS, name string) (*Sheet, error) {
	d, err := ReadDescriptor(fsys, name)
	if err != nil {
		return nil, err
	}

	imgPath := path.Join(path.Dir(name), d.Image)
	f, err := fsys.Open(imgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite image %s: %w", imgPath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s failed: %w", imgPath, err)
	}

	sheet, err := New(ebiten.NewImageFromImage(img), d.Columns, d.Rows)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", name, err)
	}
	return sheet, nil
}
