package routemap

import cm "ticketroute/internal/citymap"

// segmentSpec is the static description of one claimable segment used to
// build the fixed 78-pair catalog below. A catalogEntry with two segmentSpecs
// is a parallel route; the game board's double tracks.
type segmentSpec struct {
	color  cm.TrainColor
	length uint8
}

// catalogEntry is one adjacent city pair and its 1 or 2 parallel segments.
type catalogEntry struct {
	pair     cm.Pair
	segments []segmentSpec
}

func single(a, b cm.City, color cm.TrainColor, length uint8) catalogEntry {
	return catalogEntry{pair: cm.Pair{A: a, B: b}, segments: []segmentSpec{{color: color, length: length}}}
}

func double(a, b cm.City, length uint8, color1, color2 cm.TrainColor) catalogEntry {
	return catalogEntry{pair: cm.Pair{A: a, B: b}, segments: []segmentSpec{{color: color1, length: length}, {color: color2, length: length}}}
}

// catalog is the fixed 78 bidirectional city pairs of the published
// board, grouped and ordered the way the original map defines them, city by
// city in alphabetical order.
var catalog = []catalogEntry{
	// Atlanta.
	single(cm.Atlanta, cm.Charleston, cm.Wild, 2),
	single(cm.Atlanta, cm.Miami, cm.Blue, 5),
	single(cm.Atlanta, cm.Nashville, cm.Wild, 1),
	double(cm.Atlanta, cm.NewOrleans, 5, cm.Orange, cm.Yellow),
	double(cm.Atlanta, cm.Raleigh, 2, cm.Wild, cm.Wild),
	// Boston.
	double(cm.Boston, cm.Montreal, 2, cm.Wild, cm.Wild),
	double(cm.Boston, cm.NewYork, 2, cm.Yellow, cm.Red),
	// Calgary.
	single(cm.Calgary, cm.Helena, cm.Wild, 4),
	single(cm.Calgary, cm.Seattle, cm.Wild, 4),
	single(cm.Calgary, cm.Vancouver, cm.Wild, 3),
	single(cm.Calgary, cm.Winnipeg, cm.White, 6),
	// Charleston.
	single(cm.Charleston, cm.Miami, cm.Pink, 4),
	single(cm.Charleston, cm.Raleigh, cm.Wild, 2),
	// Chicago.
	single(cm.Chicago, cm.Duluth, cm.Red, 3),
	single(cm.Chicago, cm.Omaha, cm.Blue, 4),
	double(cm.Chicago, cm.Pittsburgh, 3, cm.Black, cm.Orange),
	double(cm.Chicago, cm.SaintLouis, 2, cm.Green, cm.White),
	single(cm.Chicago, cm.Toronto, cm.White, 4),
	// Dallas.
	single(cm.Dallas, cm.ElPaso, cm.Red, 4),
	double(cm.Dallas, cm.Houston, 1, cm.Wild, cm.Wild),
	single(cm.Dallas, cm.LittleRock, cm.Wild, 2),
	double(cm.Dallas, cm.OklahomaCity, 2, cm.Wild, cm.Wild),
	// Denver.
	single(cm.Denver, cm.Helena, cm.Green, 4),
	double(cm.Denver, cm.KansasCity, 4, cm.Black, cm.Orange),
	single(cm.Denver, cm.OklahomaCity, cm.Red, 4),
	single(cm.Denver, cm.Omaha, cm.Pink, 4),
	single(cm.Denver, cm.Phoenix, cm.White, 5),
	double(cm.Denver, cm.SaltLakeCity, 3, cm.Red, cm.Yellow),
	single(cm.Denver, cm.SantaFe, cm.Wild, 2),
	// Duluth.
	single(cm.Duluth, cm.Helena, cm.Orange, 6),
	double(cm.Duluth, cm.Omaha, 2, cm.Wild, cm.Wild),
	single(cm.Duluth, cm.SaultStMarie, cm.Wild, 3),
	single(cm.Duluth, cm.Toronto, cm.Pink, 6),
	single(cm.Duluth, cm.Winnipeg, cm.Black, 4),
	// El Paso.
	single(cm.ElPaso, cm.Houston, cm.Green, 6),
	single(cm.ElPaso, cm.LosAngeles, cm.Black, 6),
	single(cm.ElPaso, cm.OklahomaCity, cm.Yellow, 5),
	single(cm.ElPaso, cm.Phoenix, cm.Wild, 3),
	single(cm.ElPaso, cm.SantaFe, cm.Wild, 2),
	// Helena.
	single(cm.Helena, cm.Omaha, cm.Red, 5),
	single(cm.Helena, cm.SaltLakeCity, cm.Pink, 3),
	single(cm.Helena, cm.Seattle, cm.Yellow, 6),
	single(cm.Helena, cm.Winnipeg, cm.Blue, 4),
	// Houston.
	single(cm.Houston, cm.NewOrleans, cm.Wild, 2),
	// Kansas City.
	double(cm.KansasCity, cm.SaintLouis, 2, cm.Blue, cm.Pink),
	double(cm.KansasCity, cm.OklahomaCity, 2, cm.Wild, cm.Wild),
	double(cm.KansasCity, cm.Omaha, 1, cm.Wild, cm.Wild),
	// Las Vegas.
	single(cm.LasVegas, cm.LosAngeles, cm.Wild, 2),
	single(cm.LasVegas, cm.SaltLakeCity, cm.Orange, 3),
	// Little Rock.
	single(cm.LittleRock, cm.Nashville, cm.White, 3),
	single(cm.LittleRock, cm.NewOrleans, cm.Wild, 3),
	single(cm.LittleRock, cm.OklahomaCity, cm.Wild, 2),
	single(cm.LittleRock, cm.SaintLouis, cm.Wild, 2),
	// Los Angeles.
	single(cm.LosAngeles, cm.Phoenix, cm.Wild, 3),
	double(cm.LosAngeles, cm.SanFrancisco, 3, cm.Pink, cm.Yellow),
	// Miami.
	single(cm.Miami, cm.NewOrleans, cm.Red, 6),
	// Montreal.
	single(cm.Montreal, cm.NewYork, cm.Blue, 3),
	single(cm.Montreal, cm.SaultStMarie, cm.Black, 5),
	single(cm.Montreal, cm.Toronto, cm.Wild, 3),
	// Nashville.
	single(cm.Nashville, cm.Pittsburgh, cm.Yellow, 4),
	single(cm.Nashville, cm.Raleigh, cm.Black, 3),
	single(cm.Nashville, cm.SaintLouis, cm.Wild, 2),
	// New York.
	double(cm.NewYork, cm.Pittsburgh, 2, cm.Green, cm.White),
	double(cm.NewYork, cm.Washington, 2, cm.Red, cm.Yellow),
	// Oklahoma City.
	single(cm.OklahomaCity, cm.SantaFe, cm.Blue, 3),
	// Phoenix.
	single(cm.Phoenix, cm.SantaFe, cm.Wild, 3),
	// Pittsburgh.
	single(cm.Pittsburgh, cm.Raleigh, cm.Wild, 2),
	single(cm.Pittsburgh, cm.SaintLouis, cm.Green, 5),
	single(cm.Pittsburgh, cm.Toronto, cm.Wild, 2),
	single(cm.Pittsburgh, cm.Washington, cm.Wild, 2),
	// Portland.
	single(cm.Portland, cm.SaltLakeCity, cm.Blue, 6),
	double(cm.Portland, cm.SanFrancisco, 5, cm.Green, cm.Pink),
	// Raleigh.
	double(cm.Raleigh, cm.Washington, 2, cm.Wild, cm.Wild),
	// Salt Lake City.
	double(cm.SaltLakeCity, cm.SanFrancisco, 5, cm.Orange, cm.White),
	// Sault St. Marie.
	single(cm.SaultStMarie, cm.Toronto, cm.Wild, 2),
	single(cm.SaultStMarie, cm.Winnipeg, cm.Wild, 6),
	// Seattle.
	double(cm.Seattle, cm.Portland, 1, cm.Wild, cm.Wild),
	double(cm.Seattle, cm.Vancouver, 1, cm.Wild, cm.Wild),
}
