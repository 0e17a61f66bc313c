// Package story 实现小说与分镜提示词装配及生成用例
package story

// mbtiTraits MBTI 类型到性格描述短语的映射
// 提示词中只输出描述短语，不输出 MBTI 代码本身
var mbtiTraits = map[string]string{
	"ISTJ": "신중하고 책임감이 강하며 체계적인",
	"ISFJ": "배려심이 깊고 헌신적이며 꼼꼼한",
	"INFJ": "통찰력이 있고 이상적이며 공감능력이 뛰어난",
	"INTJ": "분석적이고 전략적이며 독립적인",
	"ISTP": "논리적이고 융통성 있으며 실용적인",
	"ISFP": "예술적 감각이 있고 자유로우며 섬세한",
	"INFP": "이상주의적이고 창의적이며 감수성이 풍부한",
	"INTP": "지적 호기심이 많고 혁신적이며 논리적인",
	"ESTP": "활동적이고 현실적이며 순발력 있는",
	"ESFP": "사교적이고 즉흥적이며 열정적인",
	"ENFP": "열정적이고 창의적이며 사람들을 잘 이끄는",
	"ENTP": "독창적이고 도전적이며 논쟁을 즐기는",
	"ESTJ": "체계적이고 실용적이며 지도력 있는",
	"ESFJ": "친절하고 협조적이며 사교성이 좋은",
	"ENFJ": "카리스마 있고 이타적이며 사람들을 잘 이끄는",
	"ENTJ": "결단력 있고 전략적이며 리더십이 있는",
}

// MBTITraits 返回 MBTI 类型对应的性格描述短语，未知类型返回空串
func MBTITraits(mbti string) string {
	return mbtiTraits[mbti]
}
