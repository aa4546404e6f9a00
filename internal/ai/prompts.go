package ai

import "fmt"

const (
	// fieldSystemPrompt steers the model toward strict JSON for the
	// voice-parsing call.
	fieldSystemPrompt = "你是一个专业的旅行规划助手，擅长从语音输入中提取旅行信息。请始终以有效的JSON格式返回结果。"

	// planSystemPrompt does the same for itinerary generation.
	planSystemPrompt = "你是一个专业的旅行规划师，擅长制定详细的旅行计划。请始终以有效的 JSON 格式返回结果。"
)

// buildFieldPrompt asks the model to extract travel fields from a
// transcript. today anchors relative phrases like "玩5天".
func buildFieldPrompt(transcript, today string) string {
	return fmt.Sprintf(`请分析用户的语音输入内容，并提取出旅行规划所需的信息。

用户语音输入内容：%s

请从语音内容中提取以下信息，并以JSON格式返回：
1. destination: 目的地（如果有提到具体城市或国家）
2. startDate: 出发日期（格式：YYYY-MM-DD，如果只提到天数，请从今天开始计算，今天是%s）
3. endDate: 返回日期（格式：YYYY-MM-DD）
4. budget: 预算金额（数字，单位：元）
5. travelers: 同行人数（数字）
6. preferences: 旅行偏好（如：美食、购物、文化历史、自然风光、亲子游等，多个偏好用顿号分隔）

注意：
- 如果某个信息没有明确提到，请返回null而不是空字符串
- 如果提到"X天"，请从今天开始计算日期
- 预算识别要准确，如"1万元"应该是10000，"5千元"应该是5000
- 人数识别要准确，如"2个人"应该是2，"带孩子"可能是3人（2大人+1小孩）
- 偏好识别要准确，如"喜欢美食"提取为"美食"

请只返回JSON格式的数据，不要包含其他说明文字。`, transcript, today)
}

// buildPlanPrompt asks the model for a complete itinerary document matching
// the TravelPlan schema.
func buildPlanPrompt(req PlanRequest) string {
	return fmt.Sprintf(`作为专业的旅行规划师，请为以下需求制定详细的旅行计划：

目的地：%s
出发日期：%s
返回日期：%s
预算：%d 元
同行人数：%d 人
旅行偏好：%s

请以 JSON 格式返回详细的旅行计划，包含以下结构：
{
  "title": "旅行计划标题",
  "destination": "目的地",
  "startDate": "出发日期",
  "endDate": "返回日期",
  "budget": 预算金额,
  "travelers": 人数,
  "preferences": "旅行偏好",
  "itinerary": {
    "summary": "整体行程概述",
    "totalEstimatedCost": 总预估费用,
    "days": [
      {
        "day": 1,
        "date": "日期",
        "activities": [
          {
            "time": "时间",
            "activity": "活动内容",
            "location": "地点",
            "estimatedCost": 预估费用,
            "notes": "备注（可选）"
          }
        ]
      }
    ],
    "recommendations": {
      "accommodation": ["住宿推荐1", "住宿推荐2"],
      "transportation": ["交通方式1", "交通方式2"],
      "dining": ["餐厅推荐1", "餐厅推荐2"],
      "activities": ["活动推荐1", "活动推荐2"]
    }
  }
}

请确保：
1. 预算分配合理，总预估费用不超过预算
2. 行程安排符合旅行偏好
3. 包含详细的每日活动安排
4. 提供实用的推荐信息
5. 返回有效的 JSON 格式，不要包含注释或 markdown 代码块`,
		req.Destination, req.StartDate, req.EndDate, req.Budget, req.Travelers, req.Preferences)
}
