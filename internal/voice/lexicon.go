// README: Static lexicon tables for the rule-based transcript extractor.
package voice

// ImpliedDestination maps trigger keywords (landmarks, food, culture words)
// to the destination they imply when no place name is mentioned directly.
type ImpliedDestination struct {
	Destination string
	Keywords    []string
}

// PreferenceCategory is one label of the preference taxonomy together with
// the keywords that trigger it.
type PreferenceCategory struct {
	Label    string
	Keywords []string
}

// Lexicon holds the read-only reference tables the extractor matches
// against. It is loaded once at startup and never mutated; a smaller
// fixture can be injected in tests.
type Lexicon struct {
	// Cities are checked before Countries so a specific city mention wins
	// over the country containing it.
	Cities    []string
	Countries []string
	Implied   []ImpliedDestination
	// Preferences are scanned in declared order; output order follows the
	// taxonomy, not the transcript.
	Preferences []PreferenceCategory
}

// DefaultLexicon returns the built-in destination list and preference
// taxonomy used in production.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Cities: []string{
			"北京", "上海", "广州", "深圳", "成都", "西安", "杭州", "南京",
		},
		Countries: []string{
			"日本", "韩国", "泰国", "新加坡", "马来西亚", "越南", "菲律宾", "印度尼西亚",
			"中国", "香港", "台湾", "澳门",
			"美国", "加拿大", "英国", "法国", "德国", "意大利", "西班牙", "荷兰", "瑞士", "澳大利亚", "新西兰",
			"迪拜", "土耳其", "埃及", "南非", "巴西", "阿根廷", "墨西哥", "印度", "尼泊尔", "斯里兰卡",
		},
		Implied: []ImpliedDestination{
			{Destination: "日本", Keywords: []string{"樱花", "富士山", "东京", "大阪", "京都"}},
			{Destination: "韩国", Keywords: []string{"泡菜", "首尔", "韩流"}},
			{Destination: "泰国", Keywords: []string{"大象", "曼谷", "普吉岛"}},
		},
		Preferences: []PreferenceCategory{
			{Label: "美食", Keywords: []string{"美食", "吃", "餐厅", "料理", "小吃", "特色菜"}},
			{Label: "购物", Keywords: []string{"购物", "买", "商店", "商场", "购物中心", "血拼"}},
			{Label: "文化历史", Keywords: []string{"文化", "历史", "古迹", "博物馆", "古建筑"}},
			{Label: "自然风光", Keywords: []string{"自然", "风景", "山水", "海滩", "公园", "山", "海", "湖", "森林"}},
			{Label: "亲子游", Keywords: []string{"亲子", "孩子", "小孩", "儿童", "带娃", "家庭游"}},
			{Label: "动漫文化", Keywords: []string{"动漫", "二次元", "卡通", "动画", "漫画"}},
			{Label: "温泉休闲", Keywords: []string{"温泉", "放松", "休闲", "spa", "按摩"}},
			{Label: "刺激冒险", Keywords: []string{"刺激", "冒险", "极限", "跳伞", "蹦极", "过山车"}},
		},
	}
}
