package sceneio

import (
	"github.com/pkg/errors"

	"fullmetal/assets"
	"fullmetal/core"
	"fullmetal/nodetype"
	"fullmetal/scene"
)

// field pairs a document key with a value to write or a pointer to read
// into.
type field struct {
	key string
	v   any
}

func setFields(obj nodetype.Object, fields ...field) error {
	for _, f := range fields {
		if err := obj.Set(f.key, f.v); err != nil {
			return err
		}
	}
	return nil
}

// getFields reads every present key; absent keys keep their value.
func getFields(obj nodetype.Object, fields ...field) error {
	for _, f := range fields {
		if _, err := obj.Get(f.key, f.v); err != nil {
			return err
		}
	}
	return nil
}

// checkRange rejects a size read from a file that the builders would
// otherwise have to clamp.
func checkRange(key string, v, lo, hi int) error {
	if v < lo || v > hi {
		return errors.Errorf("%s %d out of range %d..%d", key, v, lo, hi)
	}
	return nil
}

func writeBase(obj nodetype.Object, n *scene.NodeBase) error {
	return setFields(obj,
		field{"name", n.Name},
		field{"enabled", n.Enabled},
		field{"transform", TransformToData(n.Transform)},
	)
}

func readBase(obj nodetype.Object, n *scene.NodeBase) error {
	if err := getFields(obj, field{"name", &n.Name}, field{"enabled", &n.Enabled}); err != nil {
		return err
	}
	var t TransformData
	ok, err := obj.Get("transform", &t)
	if err != nil {
		return err
	}
	if ok {
		n.Transform = DataToTransform(t)
	}
	return nil
}

func writeMaterial(obj nodetype.Object, m core.Material) error {
	return obj.Set("material", MaterialToData(m))
}

func readMaterial(obj nodetype.Object, m *core.Material) error {
	var d MaterialData
	ok, err := obj.Get("material", &d)
	if err != nil {
		return err
	}
	if ok {
		*m = DataToMaterial(d, *m)
	}
	return nil
}

func readColor(obj nodetype.Object, key string, c *core.Color) error {
	var d ColorData
	ok, err := obj.Get(key, &d)
	if err != nil {
		return err
	}
	if ok {
		*c = DataToColor(d)
	}
	return nil
}

func writeShape(obj nodetype.Object, s *scene.ShapeNode) error {
	if err := writeBase(obj, &s.NodeBase); err != nil {
		return err
	}
	return writeMaterial(obj, s.Material)
}

func readShape(obj nodetype.Object, s *scene.ShapeNode) error {
	if err := readBase(obj, &s.NodeBase); err != nil {
		return err
	}
	return readMaterial(obj, &s.Material)
}

func writeCube(obj nodetype.Object, c *scene.CubeNode) error {
	return writeShape(obj, &c.ShapeNode)
}

func readCube(obj nodetype.Object, c *scene.CubeNode) error {
	return readShape(obj, &c.ShapeNode)
}

func writeSphere(obj nodetype.Object, s *scene.SphereNode) error {
	if err := writeShape(obj, &s.ShapeNode); err != nil {
		return err
	}
	return setFields(obj, field{"slices", s.Slices}, field{"stacks", s.Stacks})
}

func readSphere(obj nodetype.Object, s *scene.SphereNode) error {
	if err := readShape(obj, &s.ShapeNode); err != nil {
		return err
	}
	if err := getFields(obj, field{"slices", &s.Slices}, field{"stacks", &s.Stacks}); err != nil {
		return err
	}
	if err := checkRange("slices", s.Slices, 3, scene.MaxSphereDivisions); err != nil {
		return err
	}
	return checkRange("stacks", s.Stacks, 2, scene.MaxSphereDivisions)
}

func writePlane(obj nodetype.Object, p *scene.PlaneNode) error {
	if err := writeShape(obj, &p.ShapeNode); err != nil {
		return err
	}
	return setFields(obj,
		field{"width", p.Width()},
		field{"height", p.Height()},
		field{"quadSize", p.QuadSize()},
	)
}

func readPlane(obj nodetype.Object, p *scene.PlaneNode) error {
	if err := readShape(obj, &p.ShapeNode); err != nil {
		return err
	}
	width, height, quadSize := p.Width(), p.Height(), p.QuadSize()
	if err := getFields(obj, field{"width", &width}, field{"height", &height}, field{"quadSize", &quadSize}); err != nil {
		return err
	}
	for _, f := range []struct {
		key    string
		v, max int
	}{
		{"width", width, scene.MaxPlaneQuads},
		{"height", height, scene.MaxPlaneQuads},
		{"quadSize", quadSize, scene.MaxQuadSize},
	} {
		if err := checkRange(f.key, f.v, 1, f.max); err != nil {
			return err
		}
	}
	p.Build(quadSize, width, height)
	return nil
}

func writeCylinder(obj nodetype.Object, c *scene.CylinderNode) error {
	if err := writeShape(obj, &c.ShapeNode); err != nil {
		return err
	}
	return obj.Set("segments", c.Segments())
}

func readCylinder(obj nodetype.Object, c *scene.CylinderNode) error {
	if err := readShape(obj, &c.ShapeNode); err != nil {
		return err
	}
	segments := c.Segments()
	if _, err := obj.Get("segments", &segments); err != nil {
		return err
	}
	if err := checkRange("segments", segments, 3, scene.MaxSegments); err != nil {
		return err
	}
	c.Build(segments)
	return nil
}

func writeLight(obj nodetype.Object, l *scene.LightNode) error {
	if err := writeBase(obj, &l.NodeBase); err != nil {
		return err
	}
	return obj.Set("color", ColorToData(l.Color))
}

func readLight(obj nodetype.Object, l *scene.LightNode) error {
	if err := readBase(obj, &l.NodeBase); err != nil {
		return err
	}
	return readColor(obj, "color", &l.Color)
}

func writeAmbientLight(obj nodetype.Object, a *scene.AmbientLightNode) error {
	if err := writeLight(obj, &a.LightNode); err != nil {
		return err
	}
	return obj.Set("diffuse", ColorToData(a.Diffuse))
}

func readAmbientLight(obj nodetype.Object, a *scene.AmbientLightNode) error {
	if err := readLight(obj, &a.LightNode); err != nil {
		return err
	}
	return readColor(obj, "diffuse", &a.Diffuse)
}

func writeDirectionalLight(obj nodetype.Object, d *scene.DirectionalLightNode) error {
	return writeLight(obj, &d.LightNode)
}

func readDirectionalLight(obj nodetype.Object, d *scene.DirectionalLightNode) error {
	return readLight(obj, &d.LightNode)
}

func writeSpotLight(obj nodetype.Object, s *scene.SpotLightNode) error {
	if err := writeLight(obj, &s.LightNode); err != nil {
		return err
	}
	return setFields(obj,
		field{"cutoff", s.Cutoff},
		field{"exponent", s.Exponent},
		field{"direction", Vec3ToData(s.Direction)},
		field{"diffuse", ColorToData(s.Diffuse)},
	)
}

func readSpotLight(obj nodetype.Object, s *scene.SpotLightNode) error {
	if err := readLight(obj, &s.LightNode); err != nil {
		return err
	}
	if err := getFields(obj, field{"cutoff", &s.Cutoff}, field{"exponent", &s.Exponent}); err != nil {
		return err
	}
	var dir Vec3Data
	ok, err := obj.Get("direction", &dir)
	if err != nil {
		return err
	}
	if ok {
		s.Direction = DataToVec3(dir)
	}
	return readColor(obj, "diffuse", &s.Diffuse)
}

func writeMesh(obj nodetype.Object, m *scene.MeshNode) error {
	if err := writeBase(obj, &m.NodeBase); err != nil {
		return err
	}
	if err := writeMaterial(obj, m.Material); err != nil {
		return err
	}
	var model *ModelData
	if m.Model != nil {
		model = &ModelData{FilePath: m.Model.FilePath, SwitchedUVs: m.SwitchedUVs}
	}
	return obj.Set("model", model)
}

// readMesh resolves the model reference through cache.
func readMesh(cache *assets.Cache) nodetype.ReadFunc[*scene.MeshNode] {
	return func(obj nodetype.Object, m *scene.MeshNode) error {
		if err := readBase(obj, &m.NodeBase); err != nil {
			return err
		}
		if err := readMaterial(obj, &m.Material); err != nil {
			return err
		}
		var ref ModelData
		ok, err := obj.Get("model", &ref)
		if err != nil || !ok {
			return err
		}
		model, err := cache.Model(ref.FilePath)
		if err != nil {
			return errors.Wrap(err, "loading mesh model")
		}
		m.Model = model
		m.SwitchedUVs = ref.SwitchedUVs
		return nil
	}
}
