// internal/render/path.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
)

// FillPath заливает замкнутый путь одним цветом.
// Буферы вершин общие: вызывать только из потока отрисовки.
func FillPath(target *ebiten.Image, path *vector.Path, c color.Color) {
	if fillImg == nil {
		fillImg = ebiten.NewImage(1, 1)
		fillImg.Fill(color.White)
	}
	fillVs, fillIs = path.AppendVerticesAndIndicesForFilling(fillVs[:0], fillIs[:0])
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := range fillVs {
		fillVs[i].ColorR = float32(nc.R) / 255
		fillVs[i].ColorG = float32(nc.G) / 255
		fillVs[i].ColorB = float32(nc.B) / 255
		fillVs[i].ColorA = float32(nc.A) / 255
	}
	target.DrawTriangles(fillVs, fillIs, fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Triangle строит треугольник с вершиной в направлении dir (+1 вправо, -1 влево).
func Triangle(cx, cy, size, dir float32) *vector.Path {
	var path vector.Path
	path.MoveTo(cx+size*dir, cy)
	path.LineTo(cx-size*dir, cy-size)
	path.LineTo(cx-size*dir, cy+size)
	path.Close()
	return &path
}
