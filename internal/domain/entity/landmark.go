package entity

// Индексы точек лица в нумерации MediaPipe FaceMesh.
// Таблица — контракт с конкретной моделью детектора: при смене модели
// достаточно поправить значения здесь.
const (
	LandmarkNoseTip       = 1
	LandmarkLeftEyeOuter  = 33
	LandmarkLeftEyeInner  = 133
	LandmarkRightEyeInner = 362
	LandmarkRightEyeOuter = 263
	LandmarkMouthLeft     = 61
	LandmarkMouthRight    = 291
	LandmarkChin          = 199
)

// PoseLandmarks — порядок соответствий модель-картинка для решения PnP:
// внешние уголки глаз, кончик носа, уголки рта, подбородок.
var PoseLandmarks = [...]int{
	LandmarkLeftEyeOuter,
	LandmarkRightEyeOuter,
	LandmarkNoseTip,
	LandmarkMouthLeft,
	LandmarkMouthRight,
	LandmarkChin,
}

// Landmark — нормированная точка лица: x, y в долях ширины и высоты кадра,
// z — относительная глубина.
type Landmark struct {
	X float64
	Y float64
	Z float64
}

// LandmarkSet — упорядоченный набор точек одного лица. Неизменяем после
// получения от детектора, живёт в пределах анализа одного кадра.
type LandmarkSet []Landmark

// Has проверяет, что все индексы попадают в набор.
func (s LandmarkSet) Has(indices ...int) bool {
	for _, i := range indices {
		if i < 0 || i >= len(s) {
			return false
		}
	}

	return true
}

// FaceFrame — первое найденное лицо одного кадра вместе с размерами кадра.
type FaceFrame struct {
	Width     int
	Height    int
	Landmarks LandmarkSet
}
