package macro

import "mulga/internal/core"

// RegionalCategory identifies one COICOP grouping of the regional CPI.
type RegionalCategory struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	LabelShort string `json:"labelShort"`
}

// RegionalCategories lists the published COICOP groupings in display
// order, "overall" first.
var RegionalCategories = []RegionalCategory{
	{ID: "overall", Label: "총지수", LabelShort: "총지수"},
	{ID: "food", Label: "식료품·비주류음료", LabelShort: "식료품"},
	{ID: "alcohol", Label: "주류·담배", LabelShort: "주류·담배"},
	{ID: "clothing", Label: "의류·신발", LabelShort: "의류"},
	{ID: "housing", Label: "주거·수도·광열", LabelShort: "주거"},
	{ID: "household", Label: "가정용품·가사서비스", LabelShort: "가정용품"},
	{ID: "health", Label: "보건", LabelShort: "보건"},
	{ID: "transport", Label: "교통", LabelShort: "교통"},
	{ID: "communication", Label: "통신", LabelShort: "통신"},
	{ID: "recreation", Label: "오락·문화", LabelShort: "오락·문화"},
	{ID: "education", Label: "교육", LabelShort: "교육"},
	{ID: "restaurant", Label: "음식·숙박", LabelShort: "음식·숙박"},
}

// RegionalCPI is the 2024 regional consumer-price index (2020=100) with
// year-over-year rates, all-items basket.
var RegionalCPI = []core.RegionalRecord{
	{Region: "서울", Index: 114.8, Rate: 2.4},
	{Region: "부산", Index: 113.5, Rate: 2.1},
	{Region: "대구", Index: 114.2, Rate: 2.5},
	{Region: "인천", Index: 114.0, Rate: 2.2},
	{Region: "광주", Index: 114.6, Rate: 2.6},
	{Region: "대전", Index: 113.1, Rate: 2.1},
	{Region: "울산", Index: 112.5, Rate: 1.9},
	{Region: "세종", Index: 114.3, Rate: 2.3},
	{Region: "경기", Index: 114.1, Rate: 2.3},
	{Region: "강원", Index: 114.5, Rate: 2.5},
	{Region: "충북", Index: 113.8, Rate: 2.2},
	{Region: "충남", Index: 113.2, Rate: 2.1},
	{Region: "전북", Index: 114.4, Rate: 2.4},
	{Region: "전남", Index: 113.9, Rate: 2.3},
	{Region: "경북", Index: 113.6, Rate: 2.2},
	{Region: "경남", Index: 113.0, Rate: 2.0},
	{Region: "제주", Index: 116.2, Rate: 2.7},
}

// RegionalCPIByCategory maps a category ID to its per-region records.
// "overall" aliases RegionalCPI.
var RegionalCPIByCategory = map[string][]core.RegionalRecord{
	"overall": RegionalCPI,
	"food": {
		{Region: "서울", Index: 121.3, Rate: 3.1},
		{Region: "부산", Index: 119.8, Rate: 2.8},
		{Region: "대구", Index: 120.5, Rate: 3.0},
		{Region: "인천", Index: 120.2, Rate: 2.9},
		{Region: "광주", Index: 121.8, Rate: 3.3},
		{Region: "대전", Index: 119.5, Rate: 2.7},
		{Region: "울산", Index: 118.9, Rate: 2.5},
		{Region: "세종", Index: 120.8, Rate: 3.0},
		{Region: "경기", Index: 120.6, Rate: 2.9},
		{Region: "강원", Index: 121.5, Rate: 3.2},
		{Region: "충북", Index: 120.1, Rate: 2.8},
		{Region: "충남", Index: 119.7, Rate: 2.7},
		{Region: "전북", Index: 121.0, Rate: 3.1},
		{Region: "전남", Index: 120.4, Rate: 2.9},
		{Region: "경북", Index: 119.9, Rate: 2.8},
		{Region: "경남", Index: 119.3, Rate: 2.6},
		{Region: "제주", Index: 123.5, Rate: 3.8},
	},
	"alcohol": {
		{Region: "서울", Index: 110.2, Rate: 1.8},
		{Region: "부산", Index: 109.8, Rate: 1.6},
		{Region: "대구", Index: 110.0, Rate: 1.7},
		{Region: "인천", Index: 109.9, Rate: 1.7},
		{Region: "광주", Index: 110.3, Rate: 1.8},
		{Region: "대전", Index: 109.6, Rate: 1.5},
		{Region: "울산", Index: 109.4, Rate: 1.4},
		{Region: "세종", Index: 110.1, Rate: 1.7},
		{Region: "경기", Index: 110.0, Rate: 1.7},
		{Region: "강원", Index: 110.4, Rate: 1.9},
		{Region: "충북", Index: 109.7, Rate: 1.6},
		{Region: "충남", Index: 109.5, Rate: 1.5},
		{Region: "전북", Index: 110.2, Rate: 1.8},
		{Region: "전남", Index: 109.8, Rate: 1.6},
		{Region: "경북", Index: 109.6, Rate: 1.5},
		{Region: "경남", Index: 109.3, Rate: 1.4},
		{Region: "제주", Index: 111.0, Rate: 2.1},
	},
	"clothing": {
		{Region: "서울", Index: 112.5, Rate: 2.0},
		{Region: "부산", Index: 111.3, Rate: 1.7},
		{Region: "대구", Index: 112.0, Rate: 1.9},
		{Region: "인천", Index: 111.8, Rate: 1.8},
		{Region: "광주", Index: 112.2, Rate: 2.0},
		{Region: "대전", Index: 111.0, Rate: 1.6},
		{Region: "울산", Index: 110.6, Rate: 1.4},
		{Region: "세종", Index: 111.9, Rate: 1.8},
		{Region: "경기", Index: 112.1, Rate: 1.9},
		{Region: "강원", Index: 112.4, Rate: 2.1},
		{Region: "충북", Index: 111.5, Rate: 1.7},
		{Region: "충남", Index: 111.2, Rate: 1.6},
		{Region: "전북", Index: 112.0, Rate: 1.9},
		{Region: "전남", Index: 111.6, Rate: 1.7},
		{Region: "경북", Index: 111.4, Rate: 1.7},
		{Region: "경남", Index: 110.8, Rate: 1.5},
		{Region: "제주", Index: 113.2, Rate: 2.3},
	},
	"housing": {
		{Region: "서울", Index: 116.5, Rate: 3.2},
		{Region: "부산", Index: 113.8, Rate: 2.4},
		{Region: "대구", Index: 114.5, Rate: 2.6},
		{Region: "인천", Index: 115.2, Rate: 2.8},
		{Region: "광주", Index: 114.8, Rate: 2.7},
		{Region: "대전", Index: 113.3, Rate: 2.2},
		{Region: "울산", Index: 112.7, Rate: 2.0},
		{Region: "세종", Index: 117.2, Rate: 3.5},
		{Region: "경기", Index: 115.8, Rate: 3.0},
		{Region: "강원", Index: 114.2, Rate: 2.5},
		{Region: "충북", Index: 113.6, Rate: 2.3},
		{Region: "충남", Index: 113.0, Rate: 2.1},
		{Region: "전북", Index: 113.9, Rate: 2.4},
		{Region: "전남", Index: 113.4, Rate: 2.2},
		{Region: "경북", Index: 113.1, Rate: 2.1},
		{Region: "경남", Index: 112.5, Rate: 1.9},
		{Region: "제주", Index: 118.0, Rate: 3.8},
	},
	"household": {
		{Region: "서울", Index: 113.2, Rate: 2.1},
		{Region: "부산", Index: 112.0, Rate: 1.8},
		{Region: "대구", Index: 112.6, Rate: 2.0},
		{Region: "인천", Index: 112.4, Rate: 1.9},
		{Region: "광주", Index: 113.0, Rate: 2.1},
		{Region: "대전", Index: 111.8, Rate: 1.7},
		{Region: "울산", Index: 111.3, Rate: 1.5},
		{Region: "세종", Index: 112.7, Rate: 2.0},
		{Region: "경기", Index: 112.8, Rate: 2.0},
		{Region: "강원", Index: 113.1, Rate: 2.1},
		{Region: "충북", Index: 112.2, Rate: 1.8},
		{Region: "충남", Index: 111.9, Rate: 1.7},
		{Region: "전북", Index: 112.9, Rate: 2.0},
		{Region: "전남", Index: 112.3, Rate: 1.9},
		{Region: "경북", Index: 112.1, Rate: 1.8},
		{Region: "경남", Index: 111.5, Rate: 1.6},
		{Region: "제주", Index: 114.0, Rate: 2.4},
	},
	"health": {
		{Region: "서울", Index: 108.5, Rate: 1.2},
		{Region: "부산", Index: 108.0, Rate: 1.0},
		{Region: "대구", Index: 108.3, Rate: 1.1},
		{Region: "인천", Index: 108.2, Rate: 1.1},
		{Region: "광주", Index: 108.6, Rate: 1.2},
		{Region: "대전", Index: 107.8, Rate: 0.9},
		{Region: "울산", Index: 107.5, Rate: 0.8},
		{Region: "세종", Index: 108.4, Rate: 1.1},
		{Region: "경기", Index: 108.3, Rate: 1.1},
		{Region: "강원", Index: 108.7, Rate: 1.3},
		{Region: "충북", Index: 108.1, Rate: 1.0},
		{Region: "충남", Index: 107.9, Rate: 1.0},
		{Region: "전북", Index: 108.5, Rate: 1.2},
		{Region: "전남", Index: 108.2, Rate: 1.1},
		{Region: "경북", Index: 108.0, Rate: 1.0},
		{Region: "경남", Index: 107.6, Rate: 0.9},
		{Region: "제주", Index: 109.2, Rate: 1.5},
	},
	"transport": {
		{Region: "서울", Index: 117.2, Rate: 2.8},
		{Region: "부산", Index: 116.0, Rate: 2.5},
		{Region: "대구", Index: 116.8, Rate: 2.7},
		{Region: "인천", Index: 116.5, Rate: 2.6},
		{Region: "광주", Index: 117.0, Rate: 2.8},
		{Region: "대전", Index: 115.8, Rate: 2.4},
		{Region: "울산", Index: 115.2, Rate: 2.2},
		{Region: "세종", Index: 116.9, Rate: 2.7},
		{Region: "경기", Index: 116.7, Rate: 2.6},
		{Region: "강원", Index: 117.5, Rate: 2.9},
		{Region: "충북", Index: 116.2, Rate: 2.5},
		{Region: "충남", Index: 115.9, Rate: 2.4},
		{Region: "전북", Index: 117.1, Rate: 2.8},
		{Region: "전남", Index: 116.4, Rate: 2.6},
		{Region: "경북", Index: 116.1, Rate: 2.5},
		{Region: "경남", Index: 115.5, Rate: 2.3},
		{Region: "제주", Index: 118.8, Rate: 3.2},
	},
	"communication": {
		{Region: "서울", Index: 102.1, Rate: 0.3},
		{Region: "부산", Index: 102.0, Rate: 0.3},
		{Region: "대구", Index: 102.1, Rate: 0.3},
		{Region: "인천", Index: 102.0, Rate: 0.3},
		{Region: "광주", Index: 102.1, Rate: 0.3},
		{Region: "대전", Index: 102.0, Rate: 0.2},
		{Region: "울산", Index: 101.9, Rate: 0.2},
		{Region: "세종", Index: 102.1, Rate: 0.3},
		{Region: "경기", Index: 102.0, Rate: 0.3},
		{Region: "강원", Index: 102.2, Rate: 0.3},
		{Region: "충북", Index: 102.0, Rate: 0.3},
		{Region: "충남", Index: 102.0, Rate: 0.2},
		{Region: "전북", Index: 102.1, Rate: 0.3},
		{Region: "전남", Index: 102.0, Rate: 0.3},
		{Region: "경북", Index: 102.0, Rate: 0.3},
		{Region: "경남", Index: 101.9, Rate: 0.2},
		{Region: "제주", Index: 102.3, Rate: 0.4},
	},
	"recreation": {
		{Region: "서울", Index: 113.5, Rate: 2.2},
		{Region: "부산", Index: 112.2, Rate: 1.9},
		{Region: "대구", Index: 112.8, Rate: 2.1},
		{Region: "인천", Index: 112.6, Rate: 2.0},
		{Region: "광주", Index: 113.3, Rate: 2.2},
		{Region: "대전", Index: 112.0, Rate: 1.8},
		{Region: "울산", Index: 111.5, Rate: 1.6},
		{Region: "세종", Index: 112.9, Rate: 2.1},
		{Region: "경기", Index: 113.0, Rate: 2.1},
		{Region: "강원", Index: 113.8, Rate: 2.4},
		{Region: "충북", Index: 112.4, Rate: 1.9},
		{Region: "충남", Index: 112.1, Rate: 1.8},
		{Region: "전북", Index: 113.2, Rate: 2.2},
		{Region: "전남", Index: 112.5, Rate: 2.0},
		{Region: "경북", Index: 112.3, Rate: 1.9},
		{Region: "경남", Index: 111.8, Rate: 1.7},
		{Region: "제주", Index: 115.0, Rate: 2.8},
	},
	"education": {
		{Region: "서울", Index: 115.0, Rate: 2.5},
		{Region: "부산", Index: 113.2, Rate: 2.0},
		{Region: "대구", Index: 114.0, Rate: 2.3},
		{Region: "인천", Index: 113.8, Rate: 2.2},
		{Region: "광주", Index: 114.5, Rate: 2.4},
		{Region: "대전", Index: 113.0, Rate: 1.9},
		{Region: "울산", Index: 112.5, Rate: 1.7},
		{Region: "세종", Index: 114.2, Rate: 2.3},
		{Region: "경기", Index: 114.6, Rate: 2.4},
		{Region: "강원", Index: 113.5, Rate: 2.1},
		{Region: "충북", Index: 113.3, Rate: 2.0},
		{Region: "충남", Index: 112.8, Rate: 1.8},
		{Region: "전북", Index: 114.1, Rate: 2.3},
		{Region: "전남", Index: 113.4, Rate: 2.0},
		{Region: "경북", Index: 113.1, Rate: 1.9},
		{Region: "경남", Index: 112.3, Rate: 1.7},
		{Region: "제주", Index: 115.8, Rate: 2.8},
	},
	"restaurant": {
		{Region: "서울", Index: 118.5, Rate: 3.0},
		{Region: "부산", Index: 117.0, Rate: 2.6},
		{Region: "대구", Index: 117.8, Rate: 2.8},
		{Region: "인천", Index: 117.5, Rate: 2.7},
		{Region: "광주", Index: 118.2, Rate: 2.9},
		{Region: "대전", Index: 116.8, Rate: 2.5},
		{Region: "울산", Index: 116.2, Rate: 2.3},
		{Region: "세종", Index: 117.9, Rate: 2.8},
		{Region: "경기", Index: 117.7, Rate: 2.7},
		{Region: "강원", Index: 118.6, Rate: 3.1},
		{Region: "충북", Index: 117.2, Rate: 2.6},
		{Region: "충남", Index: 116.9, Rate: 2.5},
		{Region: "전북", Index: 118.3, Rate: 3.0},
		{Region: "전남", Index: 117.3, Rate: 2.6},
		{Region: "경북", Index: 117.1, Rate: 2.6},
		{Region: "경남", Index: 116.5, Rate: 2.4},
		{Region: "제주", Index: 120.2, Rate: 3.5},
	},
}

// RegionalRecords returns the per-region records for a category ID.
func RegionalRecords(categoryID string) ([]core.RegionalRecord, bool) {
	records, ok := RegionalCPIByCategory[categoryID]
	return records, ok
}
