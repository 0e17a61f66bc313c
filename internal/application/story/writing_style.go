package story

// WritingStyle 文体选项
type WritingStyle struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// WritingStyles 可选的文体列表
var WritingStyles = []WritingStyle{
	{Value: "modern", Label: "현대적 문체", Description: "간결하고 현대적인 표현"},
	{Value: "classical", Label: "고전적 문체", Description: "격조 있고 우아한 표현"},
	{Value: "casual", Label: "일상적 문체", Description: "친근하고 편안한 표현"},
	{Value: "dramatic", Label: "극적 문체", Description: "감정적이고 드라마틱한 표현"},
	{Value: "poetic", Label: "시적 문체", Description: "아름답고 서정적인 표현"},
	{Value: "humorous", Label: "유머러스 문체", Description: "재미있고 위트 있는 표현"},
	{Value: "serious", Label: "진중한 문체", Description: "무겁고 진지한 표현"},
	{Value: "fantasy", Label: "판타지 문체", Description: "환상적이고 신비로운 표현"},
}

// FindWritingStyle 按 value 查找文体，未找到返回 nil
func FindWritingStyle(value string) *WritingStyle {
	for i := range WritingStyles {
		if WritingStyles[i].Value == value {
			return &WritingStyles[i]
		}
	}
	return nil
}
