package sceneio

import (
	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/core"
)

// Vec3Data is the file form of a 3-vector.
type Vec3Data struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// ColorData is the file form of a colour, channels in 0..1.
type ColorData struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// TransformData stores a transform; Angle is in degrees around Rotation.
type TransformData struct {
	Position Vec3Data `json:"position"`
	Scale    Vec3Data `json:"scale"`
	Rotation Vec3Data `json:"rotation"`
	Angle    float32  `json:"angle"`
}

// MaterialData stores a material. SpecColor and Shininess are null when the
// term is disabled.
type MaterialData struct {
	AmbColor    ColorData  `json:"ambColor"`
	DifColor    ColorData  `json:"difColor"`
	SpecColor   *ColorData `json:"specColor"`
	Shininess   *float32   `json:"shininess"`
	DoubleSided bool       `json:"doubleSided"`
	Texture     string     `json:"texture,omitempty"`
}

// ModelData references a model by path; the geometry is never stored.
type ModelData struct {
	FilePath    string `json:"filepath"`
	SwitchedUVs bool   `json:"switchedUvs"`
}

// --- Helper conversions ---

func Vec3ToData(v mgl32.Vec3) Vec3Data {
	return Vec3Data{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func DataToVec3(d Vec3Data) mgl32.Vec3 {
	return mgl32.Vec3{d.X, d.Y, d.Z}
}

func ColorToData(c core.Color) ColorData {
	return ColorData{R: c.R, G: c.G, B: c.B, A: c.A}
}

func DataToColor(d ColorData) core.Color {
	return core.NewColor(d.R, d.G, d.B, d.A)
}

func TransformToData(t core.Transform) TransformData {
	return TransformData{
		Position: Vec3ToData(t.Position),
		Scale:    Vec3ToData(t.Scale),
		Rotation: Vec3ToData(t.Rotation),
		Angle:    t.Angle,
	}
}

func DataToTransform(d TransformData) core.Transform {
	return core.Transform{
		Position: DataToVec3(d.Position),
		Scale:    DataToVec3(d.Scale),
		Rotation: DataToVec3(d.Rotation),
		Angle:    d.Angle,
	}
}

func MaterialToData(m core.Material) MaterialData {
	d := MaterialData{
		AmbColor:    ColorToData(m.AmbientColor),
		DifColor:    ColorToData(m.DiffuseColor),
		DoubleSided: m.DoubleSided,
		Texture:     m.Texture,
	}
	if m.SpecularEnabled {
		spec := ColorToData(m.SpecularColor)
		d.SpecColor = &spec
	}
	if m.ShininessEnabled {
		shininess := m.Shininess
		d.Shininess = &shininess
	}
	return d
}

// DataToMaterial applies d over base; disabled terms keep base's values.
func DataToMaterial(d MaterialData, base core.Material) core.Material {
	m := base
	m.AmbientColor = DataToColor(d.AmbColor)
	m.DiffuseColor = DataToColor(d.DifColor)
	m.DoubleSided = d.DoubleSided
	m.Texture = d.Texture

	m.SpecularEnabled = d.SpecColor != nil
	if d.SpecColor != nil {
		m.SpecularColor = DataToColor(*d.SpecColor)
	}
	m.ShininessEnabled = d.Shininess != nil
	if d.Shininess != nil {
		m.Shininess = *d.Shininess
	}
	return m
}
