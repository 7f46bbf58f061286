// Package annual gives the coarse yearly reading for one of the eight big
// directions: period, annual star and two fixed pieces of advice.
package annual

import (
	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/period"
)

var directionAdvice = map[domain.Octant]string{
	domain.North:     "Hướng Bắc thiên về giao tế, thủy khí: hợp lưu thông, ngoại giao, giữ thông thoáng.",
	domain.NorthEast: "Hướng Đông Bắc (Cấn) ổn định, dưỡng khí: hợp tích lũy, học tập, nuôi dưỡng.",
	domain.East:      "Hướng Đông sinh trưởng: chú trọng sức khỏe, ánh sáng, khởi động việc mới.",
	domain.SouthEast: "Hướng Đông Nam mộc vượng: hợp thương mại, tăng trưởng, cần cân bằng ẩm.",
	domain.South:     "Hướng Nam hỏa vượng: hợp danh tiếng, công nghệ, tránh nóng nảy.",
	domain.SouthWest: "Hướng Tây Nam thổ dưỡng: hợp hậu cần, chăm sóc gia đình, tránh ẩm thấp.",
	domain.West:      "Hướng Tây kim: hợp sáng tạo, trẻ nhỏ, kiểm soát chi tiêu.",
	domain.NorthWest: "Hướng Tây Bắc quyền quý: hợp lãnh đạo, quý nhân, giữ môi trường sạch thoáng.",
}

var starMeanings = map[int]string{
	1: "Nhất Bạch Tham Lang: thông minh, lưu thông, hợp học tập và ngoại giao.",
	2: "Nhị Hắc Cự Môn: chú ý sức khỏe, kiện tụng; nên an tĩnh, hóa giải.",
	3: "Tam Bích Lộc Tồn: dễ tranh chấp, nên kiềm lời, hợp kế hoạch dài hạn.",
	4: "Tứ Lục Văn Khúc: văn chương, thi cử, sáng tạo, hợp nghiên cứu.",
	5: "Ngũ Hoàng Liêm Trinh: đại sát; tránh động thổ, cần hóa giải.",
	6: "Lục Bạch Vũ Khúc: quyền uy, kỷ luật; hợp công vụ, tránh cứng nhắc.",
	7: "Thất Xích Phá Quân: hao tán, tổn tài; nên tiết chế.",
	8: "Bát Bạch Tả Phù: tài lộc, ổn định; hợp tích lũy, xây dựng, bất động sản.",
	9: "Cửu Tử Hữu Bật: hỷ khí, danh tiếng; hợp khai trương, công nghệ, sáng tạo.",
}

// Calculate returns the annual reading. An unknown direction yields empty
// advice rather than an error.
func Calculate(year int, dir domain.Octant) domain.AnnualReading {
	star := period.AnnualStar(year)
	return domain.AnnualReading{
		Period:          period.Compute(year).Period,
		AnnualStar:      star,
		DirectionAdvice: directionAdvice[dir],
		StarMeaning:     starMeanings[star],
	}
}
