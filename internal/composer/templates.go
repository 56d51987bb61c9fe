package composer

import (
	"fmt"
	"math"
	"sort"

	"github.com/animaforge/scene-forge/internal/models"
)

// Pixel scale for geometry templates: one unit of input maps to 60px.
const unitScale = 60.0

// pythagoreanScenes walks through the theorem in four equal scenes: the
// triangle, the squares on both legs, and the closing equation. The first two
// extracted numbers become the leg lengths.
func pythagoreanScenes(analysis *models.Analysis, totalDuration float64) models.SceneList {
	sceneDuration := totalDuration / 4
	a := analysis.Number(0, 3)
	b := analysis.Number(1, 4)
	c := math.Sqrt(a*a + b*b)

	scenes := models.SceneList{
		newScene("Draw Right Triangle", sceneDuration, 0,
			models.VisualObject{
				ID:   "triangle",
				Type: models.ObjectShape,
				Properties: map[string]interface{}{
					"shape":       "path",
					"points":      [][2]float64{{400, 400}, {400 + a*unitScale, 400}, {400, 400 - b*unitScale}},
					"stroke":      "#2E3440",
					"strokeWidth": 3,
					"fill":        "transparent",
				},
				Animations: []models.PropertyAnimation{{
					Property: "opacity", From: 0, To: 1, Duration: sceneDuration, Easing: "ease-in",
				}},
			},
			models.VisualObject{
				ID:   "label_a",
				Type: models.ObjectText,
				Properties: map[string]interface{}{
					"text": fmt.Sprintf("a = %g", a), "x": 350, "y": 420, "fontSize": 24, "color": "#D08770",
				},
				Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.5, sceneDuration*0.5)},
			},
			models.VisualObject{
				ID:   "label_b",
				Type: models.ObjectText,
				Properties: map[string]interface{}{
					"text": fmt.Sprintf("b = %g", b), "x": 380, "y": 320, "fontSize": 24, "color": "#A3BE8C",
				},
				Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.5, sceneDuration*0.5)},
			},
		),
		newScene("Square on Side A", sceneDuration, sceneDuration,
			squareOnSide("square_a", 400-a*unitScale, 400, a, "#D08770", sceneDuration),
			areaLabel("area_a", a, 400-a*unitScale/2, 400+a*unitScale/2, "#D08770", sceneDuration),
		),
		newScene("Square on Side B", sceneDuration, sceneDuration*2,
			squareOnSide("square_b", 400, 400-2*b*unitScale, b, "#A3BE8C", sceneDuration),
			areaLabel("area_b", b, 400+b*unitScale/2, 400-b*unitScale*1.5, "#A3BE8C", sceneDuration),
		),
		newScene("Pythagorean Equation", sceneDuration, sceneDuration*3,
			models.VisualObject{
				ID:   "equation",
				Type: models.ObjectEquation,
				Properties: map[string]interface{}{
					"text": "a² + b² = c²", "x": 960, "y": 200, "fontSize": 36,
					"color": "#2E3440", "textAlign": "center", "fontWeight": "bold",
				},
				Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.3, 0)},
			},
			models.VisualObject{
				ID:   "calculation",
				Type: models.ObjectEquation,
				Properties: map[string]interface{}{
					"text": fmt.Sprintf("%g² + %g² = %.1f²", a, b, c), "x": 960, "y": 260,
					"fontSize": 28, "color": "#5E81AC", "textAlign": "center",
				},
				Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.3, sceneDuration*0.3)},
			},
			models.VisualObject{
				ID:   "result",
				Type: models.ObjectEquation,
				Properties: map[string]interface{}{
					"text": fmt.Sprintf("%g + %g = %.1f", a*a, b*b, c*c), "x": 960, "y": 320,
					"fontSize": 28, "color": "#BF616A", "textAlign": "center",
				},
				Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.3, sceneDuration*0.6)},
			},
		),
	}
	return scenes
}

func squareOnSide(id string, x, y, side float64, color string, sceneDuration float64) models.VisualObject {
	return models.VisualObject{
		ID:   id,
		Type: models.ObjectShape,
		Properties: map[string]interface{}{
			"shape": "rectangle", "x": x, "y": y,
			"width": side * unitScale, "height": side * unitScale,
			"fill": color, "fillOpacity": 0.3, "stroke": color, "strokeWidth": 2,
		},
		Animations: []models.PropertyAnimation{{
			Property: "scale", From: 0, To: 1, Duration: sceneDuration, Easing: "bounce-out",
		}},
	}
}

func areaLabel(id string, side, x, y float64, color string, sceneDuration float64) models.VisualObject {
	return models.VisualObject{
		ID:   id,
		Type: models.ObjectText,
		Properties: map[string]interface{}{
			"text": fmt.Sprintf("Area = %g² = %g", side, side*side),
			"x":    x, "y": y, "fontSize": 18, "color": color, "textAlign": "center",
		},
		Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.5, sceneDuration*0.5)},
	}
}

// vectorAdditionScenes builds the parallelogram walkthrough in five equal
// scenes. The first four numbers become the components of A and B.
func vectorAdditionScenes(analysis *models.Analysis, totalDuration float64) models.SceneList {
	sceneDuration := totalDuration / 5
	ax, ay := analysis.Number(0, 3), analysis.Number(1, 2)
	bx, by := analysis.Number(2, 2), analysis.Number(3, 3)
	originX, originY := 960.0, 540.0

	axes := newScene("Coordinate System", sceneDuration, 0,
		models.VisualObject{
			ID:   "x_axis",
			Type: models.ObjectLine,
			Properties: map[string]interface{}{
				"x1": 200, "y1": originY, "x2": 1720, "y2": originY, "stroke": "#4C566A", "strokeWidth": 2,
			},
			Animations: []models.PropertyAnimation{{
				Property: "strokeDashoffset", From: 1520, To: 0, Duration: sceneDuration * 0.5,
			}},
		},
		models.VisualObject{
			ID:   "y_axis",
			Type: models.ObjectLine,
			Properties: map[string]interface{}{
				"x1": originX, "y1": 100, "x2": originX, "y2": 980, "stroke": "#4C566A", "strokeWidth": 2,
			},
			Animations: []models.PropertyAnimation{{
				Property: "strokeDashoffset", From: 880, To: 0, Duration: sceneDuration * 0.5, Delay: sceneDuration * 0.25,
			}},
		},
		models.VisualObject{
			ID:   "origin",
			Type: models.ObjectText,
			Properties: map[string]interface{}{
				"text": "O (0,0)", "x": originX - 20, "y": originY + 20, "fontSize": 20, "color": "#4C566A",
			},
			Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.3, sceneDuration*0.7)},
		},
	)

	vecA := newScene("Vector A", sceneDuration, sceneDuration,
		vectorArrow("vector_a", originX, originY, ax, ay, "#D08770", sceneDuration),
		vectorLabel("label_vec_a", "A", originX+ax*unitScale, originY-ay*unitScale-20, "#D08770", sceneDuration),
	)
	vecB := newScene("Vector B", sceneDuration, sceneDuration*2,
		vectorArrow("vector_b", originX, originY, bx, by, "#A3BE8C", sceneDuration),
		vectorLabel("label_vec_b", "B", originX+bx*unitScale, originY-by*unitScale-20, "#A3BE8C", sceneDuration),
	)
	resultant := newScene("Resultant Vector", sceneDuration, sceneDuration*3,
		vectorArrow("vector_sum", originX, originY, ax+bx, ay+by, "#5E81AC", sceneDuration),
		vectorLabel("label_vec_sum", "A + B", originX+(ax+bx)*unitScale, originY-(ay+by)*unitScale-20, "#5E81AC", sceneDuration),
	)
	summary := newScene("Component Sum", sceneDuration, sceneDuration*4,
		models.VisualObject{
			ID:   "sum_equation",
			Type: models.ObjectEquation,
			Properties: map[string]interface{}{
				"text": fmt.Sprintf("A + B = (%g, %g)", ax+bx, ay+by),
				"x":    960, "y": 200, "fontSize": 32, "color": "#2E3440", "textAlign": "center",
			},
			Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.4, 0)},
		},
	)

	return models.SceneList{axes, vecA, vecB, resultant, summary}
}

func vectorArrow(id string, originX, originY, dx, dy float64, color string, sceneDuration float64) models.VisualObject {
	return models.VisualObject{
		ID:   id,
		Type: models.ObjectArrow,
		Properties: map[string]interface{}{
			"x1": originX, "y1": originY,
			"x2": originX + dx*unitScale, "y2": originY - dy*unitScale,
			"stroke": color, "strokeWidth": 4,
		},
		Animations: []models.PropertyAnimation{{
			Property: "strokeDashoffset",
			From:     math.Hypot(dx, dy) * unitScale,
			To:       0,
			Duration: sceneDuration * 0.6,
			Easing:   "ease-out",
		}},
	}
}

func vectorLabel(id, text string, x, y float64, color string, sceneDuration float64) models.VisualObject {
	return models.VisualObject{
		ID:   id,
		Type: models.ObjectText,
		Properties: map[string]interface{}{
			"text": text, "x": x, "y": y, "fontSize": 22, "color": color,
		},
		Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.3, sceneDuration*0.6)},
	}
}

// defaultSortArray drives the bubble sort template when the description
// carries no usable sequence of its own.
var defaultSortArray = []int{64, 34, 25, 12, 22, 11, 90}

// bubbleSortScenes shows the unsorted bars, the first comparison pass, and
// the sorted result. Bar ids repeat across scenes on purpose: the renderer
// treats a repeated id as the same object continuing into the next scene.
func bubbleSortScenes(totalDuration float64) models.SceneList {
	sceneDuration := totalDuration / 3
	array := defaultSortArray

	intro := newScene("Initial Array", sceneDuration, 0, barObjects(array, "#5E81AC", sceneDuration)...)

	var firstPass []models.VisualObject
	for i := 0; i < len(array)-1; i++ {
		stepDelay := sceneDuration * float64(i) / float64(len(array)-1)
		obj := models.VisualObject{
			ID:   fmt.Sprintf("bar_%d", i),
			Type: models.ObjectShape,
			Properties: map[string]interface{}{
				"shape": "rectangle",
				"x":     300 + i*120, "y": 540 - array[i]*4,
				"width": 80, "height": array[i] * 4,
				"fill": "#5E81AC", "stroke": "#2E3440", "strokeWidth": 2,
			},
			Animations: []models.PropertyAnimation{{
				Property: "fill", From: "#5E81AC", To: "#BF616A",
				Duration: sceneDuration * 0.1, Delay: stepDelay,
			}},
		}
		if array[i] > array[i+1] {
			obj.Animations = append(obj.Animations, models.PropertyAnimation{
				Property: "x", From: 300 + i*120, To: 300 + (i+1)*120,
				Duration: sceneDuration * 0.2, Delay: stepDelay + sceneDuration*0.1,
				Easing: "ease-in-out",
			})
		}
		firstPass = append(firstPass, obj)
	}
	pass := newScene("First Pass", sceneDuration, sceneDuration, firstPass...)

	sorted := append([]int(nil), array...)
	sort.Ints(sorted)
	done := newScene("Sorted Array", sceneDuration, sceneDuration*2, barObjects(sorted, "#A3BE8C", sceneDuration)...)

	return models.SceneList{intro, pass, done}
}

func barObjects(values []int, fill string, sceneDuration float64) []models.VisualObject {
	objects := make([]models.VisualObject, 0, len(values)*2)
	for i, value := range values {
		objects = append(objects, models.VisualObject{
			ID:   fmt.Sprintf("bar_%d", i),
			Type: models.ObjectShape,
			Properties: map[string]interface{}{
				"shape": "rectangle",
				"x":     300 + i*120, "y": 540 - value*4,
				"width": 80, "height": value * 4,
				"fill": fill, "stroke": "#2E3440", "strokeWidth": 2,
			},
			Animations: []models.PropertyAnimation{fadeIn(sceneDuration, float64(i)*0.1)},
		})
	}
	for i, value := range values {
		objects = append(objects, models.VisualObject{
			ID:   fmt.Sprintf("label_%d", i),
			Type: models.ObjectText,
			Properties: map[string]interface{}{
				"text": fmt.Sprintf("%d", value),
				"x":    340 + i*120, "y": 560, "fontSize": 18, "color": "#2E3440", "textAlign": "center",
			},
			Animations: []models.PropertyAnimation{fadeIn(sceneDuration, float64(i)*0.1+0.5)},
		})
	}
	return objects
}

// sineWaveScenes draws axes, traces one period, then labels the function.
// The first two numbers become amplitude and frequency.
func sineWaveScenes(analysis *models.Analysis, totalDuration float64) models.SceneList {
	sceneDuration := totalDuration / 3
	amplitude := analysis.Number(0, 1)
	frequency := analysis.Number(1, 1)

	axes := newScene("Axes", sceneDuration, 0,
		models.VisualObject{
			ID:   "wave_x_axis",
			Type: models.ObjectLine,
			Properties: map[string]interface{}{
				"x1": 200, "y1": 540, "x2": 1720, "y2": 540, "stroke": "#4C566A", "strokeWidth": 2,
			},
			Animations: []models.PropertyAnimation{{
				Property: "strokeDashoffset", From: 1520, To: 0, Duration: sceneDuration * 0.5,
			}},
		},
		models.VisualObject{
			ID:   "wave_y_axis",
			Type: models.ObjectLine,
			Properties: map[string]interface{}{
				"x1": 300, "y1": 200, "x2": 300, "y2": 880, "stroke": "#4C566A", "strokeWidth": 2,
			},
			Animations: []models.PropertyAnimation{{
				Property: "strokeDashoffset", From: 680, To: 0, Duration: sceneDuration * 0.5, Delay: sceneDuration * 0.25,
			}},
		},
	)

	trace := newScene("Trace the Wave", sceneDuration, sceneDuration,
		models.VisualObject{
			ID:   "sine_curve",
			Type: models.ObjectGraph,
			Properties: map[string]interface{}{
				"function": "sin", "amplitude": amplitude, "frequency": frequency,
				"x": 300, "y": 540, "width": 1420, "stroke": "#5E81AC", "strokeWidth": 3,
			},
			Animations: []models.PropertyAnimation{{
				Property: "progress", From: 0, To: 1, Duration: sceneDuration, Easing: "linear",
			}},
		},
	)

	label := newScene("Function Label", sceneDuration, sceneDuration*2,
		models.VisualObject{
			ID:   "sine_equation",
			Type: models.ObjectEquation,
			Properties: map[string]interface{}{
				"text": fmt.Sprintf("y = %g·sin(%g·x)", amplitude, frequency),
				"x":    960, "y": 200, "fontSize": 32, "color": "#2E3440", "textAlign": "center",
			},
			Animations: []models.PropertyAnimation{fadeIn(sceneDuration*0.4, 0)},
		},
	)

	return models.SceneList{axes, trace, label}
}
