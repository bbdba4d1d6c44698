package catalog

// Items is the tracked-item table for the KOSIS living-price index
// (2020=100, table DT_1J22005). Base prices are average 2020 market
// prices in KRW. Codes are stable KOSIS classification identifiers.
var Items = []Item{
	// 한식 외식
	{Code: "110K01119", Name: "자장면", Category: "한식 외식", BasePrice: 5000},
	{Code: "110K01120", Name: "짬뽕", Category: "한식 외식", BasePrice: 7000},
	{Code: "110K01114", Name: "냉면", Category: "한식 외식", BasePrice: 9000},
	{Code: "110K01115", Name: "칼국수", Category: "한식 외식", BasePrice: 7000},
	{Code: "110K01101", Name: "김치찌개 백반", Category: "한식 외식", BasePrice: 7000},
	{Code: "110K01102", Name: "된장찌개 백반", Category: "한식 외식", BasePrice: 7000},
	{Code: "110K01103", Name: "비빔밥", Category: "한식 외식", BasePrice: 8000},
	{Code: "110K01108", Name: "해장국", Category: "한식 외식", BasePrice: 7000},
	{Code: "110K01112", Name: "삼겹살 (외식)", Category: "한식 외식", BasePrice: 15000},
	{Code: "110K01111", Name: "돼지갈비 (외식)", Category: "한식 외식", BasePrice: 15000},
	{Code: "110K01138", Name: "구내식당", Category: "한식 외식", BasePrice: 6000},
	// 분식·패스트푸드
	{Code: "110K01127", Name: "김밥", Category: "분식·패스트푸드", BasePrice: 2500},
	{Code: "110K01128", Name: "떡볶이", Category: "분식·패스트푸드", BasePrice: 3500},
	{Code: "110K01129", Name: "치킨", Category: "분식·패스트푸드", BasePrice: 18000},
	{Code: "110K01130", Name: "햄버거", Category: "분식·패스트푸드", BasePrice: 5500},
	{Code: "110K01131", Name: "피자", Category: "분식·패스트푸드", BasePrice: 15000},
	// 외식 음료·주류
	{Code: "110K01133", Name: "커피 (외식)", Category: "외식 음료·주류", BasePrice: 4500},
	{Code: "110K01134", Name: "기타음료 (외식)", Category: "외식 음료·주류", BasePrice: 4000},
	{Code: "110K01135", Name: "소주 (외식)", Category: "외식 음료·주류", BasePrice: 4000},
	{Code: "110K01136", Name: "맥주 (외식)", Category: "외식 음료·주류", BasePrice: 5000},
	// 곡물·가공식품
	{Code: "110A01101", Name: "쌀", Category: "곡물·가공식품", BasePrice: 3000},
	{Code: "110A01109", Name: "국수", Category: "곡물·가공식품", BasePrice: 1500},
	{Code: "110A01110", Name: "라면", Category: "곡물·가공식품", BasePrice: 700},
	{Code: "110A01112", Name: "두부", Category: "곡물·가공식품", BasePrice: 1500},
	{Code: "110A01116", Name: "빵", Category: "곡물·가공식품", BasePrice: 3000},
	{Code: "110A01117", Name: "떡", Category: "곡물·가공식품", BasePrice: 2000},
	{Code: "110A01917", Name: "냉동식품", Category: "곡물·가공식품", BasePrice: 5000},
	{Code: "110A01918", Name: "즉석식품", Category: "곡물·가공식품", BasePrice: 3500},
	{Code: "110A01919", Name: "편의점도시락", Category: "곡물·가공식품", BasePrice: 4500},
	{Code: "110A01920", Name: "삼각김밥", Category: "곡물·가공식품", BasePrice: 1000},
	// 육류·수산물
	{Code: "110A01201", Name: "국산쇠고기", Category: "육류·수산물", BasePrice: 7000},
	{Code: "110A01202", Name: "수입쇠고기", Category: "육류·수산물", BasePrice: 4500},
	{Code: "110A01203", Name: "돼지고기", Category: "육류·수산물", BasePrice: 2000},
	{Code: "110A01204", Name: "닭고기", Category: "육류·수산물", BasePrice: 6000},
	{Code: "110A01206", Name: "햄·베이컨", Category: "육류·수산물", BasePrice: 3000},
	{Code: "110A01207", Name: "기타육류가공품", Category: "육류·수산물", BasePrice: 3000},
	{Code: "110A01304", Name: "고등어", Category: "육류·수산물", BasePrice: 4000},
	{Code: "110A01305", Name: "오징어", Category: "육류·수산물", BasePrice: 3500},
	{Code: "110A01308", Name: "조개", Category: "육류·수산물", BasePrice: 5000},
	{Code: "110A01316", Name: "어묵", Category: "육류·수산물", BasePrice: 2000},
	// 유제품·달걀
	{Code: "110A01401", Name: "우유", Category: "유제품·달걀", BasePrice: 2500},
	{Code: "110A01404", Name: "발효유", Category: "유제품·달걀", BasePrice: 2000},
	{Code: "110A01405", Name: "달걀", Category: "유제품·달걀", BasePrice: 2500},
	// 채소
	{Code: "110A01701", Name: "배추", Category: "채소", BasePrice: 3000},
	{Code: "110A01702", Name: "상추", Category: "채소", BasePrice: 2000},
	{Code: "110A01703", Name: "시금치", Category: "채소", BasePrice: 2000},
	{Code: "110A01706", Name: "깻잎", Category: "채소", BasePrice: 2000},
	{Code: "110A01707", Name: "부추", Category: "채소", BasePrice: 1500},
	{Code: "110A01708", Name: "무", Category: "채소", BasePrice: 2000},
	{Code: "110A01710", Name: "당근", Category: "채소", BasePrice: 1000},
	{Code: "110A01711", Name: "감자", Category: "채소", BasePrice: 1000},
	{Code: "110A01714", Name: "콩나물", Category: "채소", BasePrice: 1000},
	{Code: "110A01715", Name: "버섯", Category: "채소", BasePrice: 2500},
	{Code: "110A01716", Name: "오이", Category: "채소", BasePrice: 1000},
	{Code: "110A01717", Name: "풋고추", Category: "채소", BasePrice: 2000},
	{Code: "110A01718", Name: "호박", Category: "채소", BasePrice: 2500},
	{Code: "110A01720", Name: "토마토", Category: "채소", BasePrice: 2000},
	{Code: "110A01721", Name: "파", Category: "채소", BasePrice: 2500},
	{Code: "110A01722", Name: "양파", Category: "채소", BasePrice: 2000},
	{Code: "110A01723", Name: "마늘", Category: "채소", BasePrice: 2000},
	{Code: "110A01728", Name: "김", Category: "채소", BasePrice: 3000},
	// 과일
	{Code: "110A01601", Name: "사과", Category: "과일", BasePrice: 2000},
	{Code: "110A01604", Name: "포도", Category: "과일", BasePrice: 5000},
	{Code: "110A01607", Name: "귤", Category: "과일", BasePrice: 4000},
	{Code: "110A01610", Name: "수박", Category: "과일", BasePrice: 15000},
	{Code: "110A01612", Name: "바나나", Category: "과일", BasePrice: 2500},
	// 조미료·오일
	{Code: "110A01501", Name: "참기름", Category: "조미료·오일", BasePrice: 7000},
	{Code: "110A01502", Name: "식용유", Category: "조미료·오일", BasePrice: 4500},
	{Code: "110A01904", Name: "소금", Category: "조미료·오일", BasePrice: 1000},
	{Code: "110A01905", Name: "간장", Category: "조미료·오일", BasePrice: 3000},
	{Code: "110A01916", Name: "밑반찬", Category: "조미료·오일", BasePrice: 3000},
	// 간식·음료
	{Code: "110A01802", Name: "사탕", Category: "간식·음료", BasePrice: 1500},
	{Code: "110A01804", Name: "아이스크림", Category: "간식·음료", BasePrice: 1500},
	{Code: "110A01805", Name: "비스킷", Category: "간식·음료", BasePrice: 2500},
	{Code: "110A01806", Name: "스낵과자", Category: "간식·음료", BasePrice: 1500},
	{Code: "110A01807", Name: "파이", Category: "간식·음료", BasePrice: 2000},
	{Code: "110A02101", Name: "커피 (마트)", Category: "간식·음료", BasePrice: 8000},
	{Code: "110A02201", Name: "주스", Category: "간식·음료", BasePrice: 2500},
	{Code: "110A02202", Name: "두유", Category: "간식·음료", BasePrice: 2500},
	{Code: "110A02203", Name: "생수", Category: "간식·음료", BasePrice: 1000},
	{Code: "110A02205", Name: "탄산음료", Category: "간식·음료", BasePrice: 2500},
	// 주류·담배
	{Code: "110B01101", Name: "소주 (마트)", Category: "주류·담배", BasePrice: 1500},
	{Code: "110B01103", Name: "맥주 (마트)", Category: "주류·담배", BasePrice: 2000},
	{Code: "110B01104", Name: "막걸리", Category: "주류·담배", BasePrice: 1500},
	{Code: "110B02101", Name: "담배", Category: "주류·담배", BasePrice: 4500},
	// 의류·신발
	{Code: "110C01103", Name: "남자하의", Category: "의류·신발", BasePrice: 30000},
	{Code: "110C01104", Name: "남자내의", Category: "의류·신발", BasePrice: 10000},
	{Code: "110C01204", Name: "여자하의", Category: "의류·신발", BasePrice: 30000},
	{Code: "110C01205", Name: "여자내의", Category: "의류·신발", BasePrice: 10000},
	{Code: "110C01302", Name: "티셔츠", Category: "의류·신발", BasePrice: 20000},
	{Code: "110C01401", Name: "유아동복", Category: "의류·신발", BasePrice: 30000},
	{Code: "110C01501", Name: "양말", Category: "의류·신발", BasePrice: 3000},
	{Code: "110C02103", Name: "운동화", Category: "의류·신발", BasePrice: 50000},
	// 주거·광열
	{Code: "110D04101", Name: "상수도료", Category: "주거·광열", BasePrice: 20000},
	{Code: "110D04102", Name: "하수도료", Category: "주거·광열", BasePrice: 10000},
	{Code: "110D04201", Name: "공동주택관리비", Category: "주거·광열", BasePrice: 150000},
	{Code: "110D04202", Name: "쓰레기봉투료", Category: "주거·광열", BasePrice: 3000},
	{Code: "110D05101", Name: "전기료", Category: "주거·광열", BasePrice: 50000},
	{Code: "110D05201", Name: "도시가스", Category: "주거·광열", BasePrice: 30000},
	// 가사용품
	{Code: "110E03202", Name: "가전제품렌탈비", Category: "가사용품", BasePrice: 30000},
	{Code: "110E04108", Name: "부엌용용구", Category: "가사용품", BasePrice: 10000},
	{Code: "110E06101", Name: "세탁세제", Category: "가사용품", BasePrice: 10000},
	{Code: "110E06102", Name: "섬유유연제", Category: "가사용품", BasePrice: 8000},
	{Code: "110E06104", Name: "부엌용세제", Category: "가사용품", BasePrice: 3000},
	// 의료·보건
	{Code: "110F01106", Name: "소염진통제", Category: "의료·보건", BasePrice: 3000},
	{Code: "110F01109", Name: "조제약", Category: "의료·보건", BasePrice: 5000},
	{Code: "110F01114", Name: "건강기능식품", Category: "의료·보건", BasePrice: 30000},
	{Code: "110F01116", Name: "병원약품", Category: "의료·보건", BasePrice: 5000},
	{Code: "110F01202", Name: "생리대", Category: "의료·보건", BasePrice: 8000},
	{Code: "110F01203", Name: "마스크", Category: "의료·보건", BasePrice: 1000},
	{Code: "110F02101", Name: "외래진료비", Category: "의료·보건", BasePrice: 15000},
	{Code: "110F02103", Name: "한방진료비", Category: "의료·보건", BasePrice: 20000},
	{Code: "110F02104", Name: "약국조제료", Category: "의료·보건", BasePrice: 5000},
	{Code: "110F02201", Name: "치과진료비", Category: "의료·보건", BasePrice: 50000},
	// 교통
	{Code: "110G02101", Name: "휘발유", Category: "교통", BasePrice: 1500},
	{Code: "110G02102", Name: "경유", Category: "교통", BasePrice: 1300},
	{Code: "110G02303", Name: "도로통행료", Category: "교통", BasePrice: 2000},
	{Code: "110G03102", Name: "도시철도료", Category: "교통", BasePrice: 1350},
	{Code: "110G03201", Name: "시내버스료", Category: "교통", BasePrice: 1200},
	{Code: "110G03203", Name: "택시료", Category: "교통", BasePrice: 3800},
	{Code: "110G03402", Name: "택배이용료", Category: "교통", BasePrice: 4000},
	// 통신
	{Code: "110H03102", Name: "휴대전화료", Category: "통신", BasePrice: 50000},
	{Code: "110H03103", Name: "인터넷이용료", Category: "통신", BasePrice: 30000},
	// 오락·문화
	{Code: "110I03101", Name: "장난감", Category: "오락·문화", BasePrice: 15000},
	{Code: "110I03106", Name: "반려동물용품", Category: "오락·문화", BasePrice: 15000},
	{Code: "110I04201", Name: "영화관람료", Category: "오락·문화", BasePrice: 12000},
	{Code: "110I04206", Name: "온라인콘텐츠", Category: "오락·문화", BasePrice: 10000},
	{Code: "110I04207", Name: "방송수신료", Category: "오락·문화", BasePrice: 2500},
	// 교육
	{Code: "110J01101", Name: "유치원납입금", Category: "교육", BasePrice: 250000},
	{Code: "110J03101", Name: "전문대학납입금", Category: "교육", BasePrice: 1500000},
	{Code: "110J03103", Name: "사립대학납입금", Category: "교육", BasePrice: 3500000},
	{Code: "110J04101", Name: "초등학원비", Category: "교육", BasePrice: 200000},
	{Code: "110J04102", Name: "중학원비", Category: "교육", BasePrice: 300000},
	{Code: "110J04103", Name: "고등학원비", Category: "교육", BasePrice: 400000},
	{Code: "110J04108", Name: "가정학습지", Category: "교육", BasePrice: 40000},
	// 개인서비스·용품
	{Code: "110L01101", Name: "목욕료", Category: "개인서비스·용품", BasePrice: 8000},
	{Code: "110L01103", Name: "이발료", Category: "개인서비스·용품", BasePrice: 12000},
	{Code: "110L01104", Name: "미용료", Category: "개인서비스·용품", BasePrice: 30000},
	{Code: "110L01204", Name: "치약", Category: "개인서비스·용품", BasePrice: 3000},
	{Code: "110L01206", Name: "샴푸", Category: "개인서비스·용품", BasePrice: 8000},
	{Code: "110L01208", Name: "화장지", Category: "개인서비스·용품", BasePrice: 8000},
	{Code: "110L01209", Name: "기초화장품", Category: "개인서비스·용품", BasePrice: 30000},
	{Code: "110L03104", Name: "보험서비스료", Category: "개인서비스·용품", BasePrice: 50000},
	{Code: "110L03105", Name: "자동차보험료", Category: "개인서비스·용품", BasePrice: 600000},
	// 종합지수 (복합 집계)
	{Code: "000", Name: "총지수", Category: "종합지수", BasePrice: 100},
	{Code: "110", Name: "생활물가지수", Category: "종합지수", BasePrice: 100},
	{Code: "111", Name: "식품", Category: "종합지수", BasePrice: 100},
	{Code: "112", Name: "식품이외", Category: "종합지수", BasePrice: 100},
	{Code: "120", Name: "전월세", Category: "종합지수", BasePrice: 100},
	{Code: "200", Name: "생활물가이외", Category: "종합지수", BasePrice: 100},
	{Code: "999", Name: "전·월세포함 생활물가", Category: "종합지수", BasePrice: 100},
}
