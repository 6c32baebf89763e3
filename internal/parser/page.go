// page.go - Page settings and embedded image codecs
package parser

import (
	"fmt"
	"strconv"

	"github.com/kicad-visualizer/backend/internal/models"
	"github.com/kicad-visualizer/backend/internal/sexp"
)

const (
	tagPaper    = "paper"
	tagPortrait = "portrait"
	tagImage    = "image"
	tagScale    = "scale"
	tagData     = "data"
)

// DecodePageSettings decodes a (paper ...) node: either a standard
// size token or an explicit width/height pair, each optionally followed
// by the portrait flag.
func DecodePageSettings(n sexp.Node) (models.PageSettings, error) {
	list, err := expectList(n, tagPaper)
	if err != nil {
		return models.PageSettings{}, err
	}
	if list.Len() < 2 {
		return models.PageSettings{}, truncated(tagPaper, "at least one component")
	}

	tokens := make([]string, 0, list.Len()-1)
	for i := 1; i < list.Len(); i++ {
		text, err := atomAt(list, i, tagPaper, "component")
		if err != nil {
			return models.PageSettings{}, err
		}
		tokens = append(tokens, text)
	}

	if _, err := strconv.ParseFloat(tokens[0], 64); err != nil {
		return decodeStandardPage(tokens)
	}
	return decodeCustomPage(tokens)
}

func decodeStandardPage(tokens []string) (models.PageSettings, error) {
	size, err := models.LookupPaperSize(tokens[0])
	if err != nil {
		return models.PageSettings{}, invalidEnum(tagPaper, err)
	}

	page := models.PageSettings{Size: size}
	switch {
	case len(tokens) == 1:
	case len(tokens) == 2 && tokens[1] == tagPortrait:
		page.Portrait = true
	default:
		return models.PageSettings{}, invalidShape(tagPaper, "unexpected trailing components")
	}
	return page, nil
}

func decodeCustomPage(tokens []string) (models.PageSettings, error) {
	if len(tokens) < 2 {
		// A lone number is neither a standard size nor a full pair.
		return models.PageSettings{}, invalidEnum(tagPaper, fmt.Errorf("invalid paper size"))
	}

	width, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return models.PageSettings{}, invalidNumber(tagPaper, tokens[0], err)
	}
	height, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return models.PageSettings{}, invalidNumber(tagPaper, tokens[1], err)
	}

	page := models.PageSettings{Width: width, Height: height}
	switch {
	case len(tokens) == 2:
	case len(tokens) == 3 && tokens[2] == tagPortrait:
		page.Portrait = true
	default:
		return models.PageSettings{}, invalidShape(tagPaper, "unexpected trailing components")
	}

	if err := page.Validate(); err != nil {
		return models.PageSettings{}, err
	}
	return page, nil
}

// EncodePageSettings encodes page settings. The portrait flag is a bare
// trailing atom, emitted only when set.
func EncodePageSettings(p models.PageSettings) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagPaper))
	if p.Custom() {
		list.Append(sexp.Number(p.Width), sexp.Number(p.Height))
	} else {
		list.Append(sexp.Symbol(p.Size))
	}
	if p.Portrait {
		list.Append(sexp.Symbol(tagPortrait))
	}
	return list
}

// DecodeImage decodes an (image ...) node. Position, uuid and the
// opaque data payload are required; scale and layer are optional. The
// payload is carried as-is and never decoded.
func DecodeImage(n sexp.Node) (models.Image, error) {
	list, err := expectList(n, tagImage)
	if err != nil {
		return models.Image{}, err
	}

	var img models.Image
	var atSeen, uuidSeen, dataSeen bool

	for _, item := range list.Items[1:] {
		sub, ok := item.(*sexp.List)
		if !ok {
			continue
		}
		switch tag, _ := sub.Tag(); tag {
		case tagAt:
			pos, err := DecodePosition(sub)
			if err != nil {
				return models.Image{}, err
			}
			img.At = pos
			atSeen = true
		case tagScale:
			v, err := taggedFloat(sub, tagScale)
			if err != nil {
				return models.Image{}, err
			}
			img.Scale = &v
		case tagLayer:
			layer, err := decodeLayerNode(sub)
			if err != nil {
				return models.Image{}, err
			}
			img.Layer = layer
		case tagUUID:
			id, err := DecodeUUID(sub)
			if err != nil {
				return models.Image{}, err
			}
			img.UUID = id
			uuidSeen = true
		case tagData:
			data, err := taggedString(sub, tagData)
			if err != nil {
				return models.Image{}, err
			}
			img.Data = data
			dataSeen = true
		}
	}

	if !atSeen || !uuidSeen || !dataSeen {
		return models.Image{}, truncated(tagImage, "required image components")
	}
	if err := img.Validate(); err != nil {
		return models.Image{}, err
	}
	return img, nil
}

// EncodeImage encodes an image. Field order is fixed: at, scale,
// layer, uuid, data.
func EncodeImage(img models.Image) *sexp.List {
	list := sexp.NewList(sexp.Symbol(tagImage), EncodePosition(img.At))
	if img.Scale != nil {
		list.Append(sexp.NewList(sexp.Symbol(tagScale), sexp.Number(*img.Scale)))
	}
	if img.Layer != "" {
		list.Append(encodeLayerNode(img.Layer))
	}
	list.Append(EncodeUUID(img.UUID))
	list.Append(sexp.NewList(sexp.Symbol(tagData), sexp.String(img.Data)))
	return list
}
