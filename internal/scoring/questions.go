package scoring

// Questions is the weighted questionnaire, one weight vector per answer level.
var Questions = []Question{
	{
		ID:   1,
		Text: "需要看護協助的程度為何？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 2, 1},
			LevelMedium: {3, 1, 3, 2},
			LevelHigh:   {5, 3, 5, 4},
		},
		Options: map[Level]string{
			LevelLow:    "1-4HR/D",
			LevelMedium: "5-12HR",
			LevelHigh:   "13-24HR",
		},
	},
	{
		ID:   2,
		Text: "受照顧者目前失能程度為何？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 0, 0},
			LevelMedium: {3, 1, 1, 1},
			LevelHigh:   {6, 1, 2, 2},
		},
		Options: map[Level]string{
			LevelLow:    "助行器",
			LevelMedium: "行走困難",
			LevelHigh:   "臥床",
		},
	},
	{
		ID:   3,
		Text: "輕微失智傾向（低度）或已有明確低中高度診斷？",
		Weights: map[Level]Weights{
			LevelLow:    {2, 0, 0, 1},
			LevelMedium: {4, 1, 2, 2},
			LevelHigh:   {7, 2, 4, 3},
		},
		Options: map[Level]string{
			LevelLow:    "傾向或輕度",
			LevelMedium: "中度或中重度",
			LevelHigh:   "重度",
		},
	},
	{
		ID:   4,
		Text: "抗拒他人照顧行為的強度有多高？",
		Weights: map[Level]Weights{
			LevelLow:    {2, 0, 1, 0},
			LevelMedium: {4, 1, 4, 2},
			LevelHigh:   {5, 2, 6, 3},
		},
		Options: map[Level]string{
			LevelLow:    "不悅但配合",
			LevelMedium: "偶爾會拒絕",
			LevelHigh:   "完全抗拒",
		},
	},
	{
		ID:   5,
		Text: "家庭成員是否有溝通不良情況，負面程度為何？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 0},
			LevelMedium: {1, 3, 2, 1},
			LevelHigh:   {2, 5, 3, 2},
		},
		Options: map[Level]string{
			LevelLow:    "時好時壞",
			LevelMedium: "不願或勉強配合",
			LevelHigh:   "時常爭吵",
		},
	},
	{
		ID:   6,
		Text: "是否有特殊醫療或長照資源的追蹤？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 0, 1},
			LevelMedium: {2, 0, 1, 3},
			LevelHigh:   {4, 1, 2, 5},
		},
		Options: map[Level]string{
			LevelLow:    "偶有就醫但無持續依賴(高血壓、糖尿病)",
			LevelMedium: "穩定醫療要定期追蹤(回診治療抽血檢查)",
			LevelHigh:   "高度依賴生活維持(洗腎、癌症)",
		},
	},
	{
		ID:   7,
		Text: "經常性緊急通報頻率為何（跌倒、走失等）？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 0, 1},
			LevelMedium: {3, 1, 2, 2},
			LevelHigh:   {5, 1, 4, 4},
		},
		Options: map[Level]string{
			LevelLow:    "一月一次",
			LevelMedium: "一周一次",
			LevelHigh:   "每日發生",
		},
	},
	{
		ID:   8,
		Text: "照顧的類型多元程度為何？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 1},
			LevelMedium: {1, 2, 1, 2},
			LevelHigh:   {2, 4, 2, 3},
		},
		Options: map[Level]string{
			LevelLow:    "2類以下",
			LevelMedium: "2-5類",
			LevelHigh:   "6類以上",
		},
	},
	{
		ID:   9,
		Text: "是否具有精神、情緒或成癮議題？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 0, 0, 0},
			LevelMedium: {2, 0, 1, 1},
			LevelHigh:   {4, 2, 5, 3},
		},
		Options: map[Level]string{
			LevelLow:    "情緒起伏或壓力反應，但可自我調節",
			LevelMedium: "困擾對生活功能產生影響",
			LevelHigh:   "明顯影響生活安全與判斷能力",
		},
	},
	{
		ID:   10,
		Text: "個案過去暴力行為或危機介入的嚴重程度？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 1, 2},
			LevelMedium: {2, 1, 3, 2},
			LevelHigh:   {3, 2, 6, 4},
		},
		Options: map[Level]string{
			LevelLow:    "有但無威脅性",
			LevelMedium: "需介入安撫但無實質傷害",
			LevelHigh:   "難以阻止",
		},
	},
	{
		ID:   11,
		Text: "夜間照顧與守夜的需求程度？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 0, 1},
			LevelMedium: {3, 0, 1, 2},
			LevelHigh:   {5, 0, 2, 4},
		},
		Options: map[Level]string{
			LevelLow:    "一周一次",
			LevelMedium: "一周三次以下",
			LevelHigh:   "每天",
		},
	},
	{
		ID:   12,
		Text: "失蹤、走失經驗危險程度？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 1, 0, 1},
			LevelMedium: {2, 1, 2, 1},
			LevelHigh:   {4, 2, 4, 3},
		},
		Options: map[Level]string{
			LevelLow:    "對走失有意識知道尋求支援",
			LevelMedium: "無意識到處移動",
			LevelHigh:   "完全對自己位置無認知",
		},
	},
	{
		ID:   13,
		Text: "藥品及管理必要程度？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 0, 0, 0},
			LevelMedium: {1, 0, 0, 1},
			LevelHigh:   {3, 1, 1, 2},
		},
		Options: map[Level]string{
			LevelLow:    "不愛吃藥",
			LevelMedium: "忘記是否用藥",
			LevelHigh:   "自己決定是否用藥",
		},
	},
	{
		ID:   14,
		Text: "對於他人攻擊行為的強度？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 0, 1},
			LevelMedium: {3, 1, 4, 2},
			LevelHigh:   {5, 2, 6, 3},
		},
		Options: map[Level]string{
			LevelLow:    "口頭程度",
			LevelMedium: "物理程度",
			LevelHigh:   "公共安全程度",
		},
	},
	{
		ID:   15,
		Text: "常態性管路照護（導尿管、胃造口）的強度？",
		Weights: map[Level]Weights{
			LevelLow:    {2, 0, 0, 1},
			LevelMedium: {4, 0, 0, 2},
			LevelHigh:   {6, 0, 1, 4},
		},
		Options: map[Level]string{
			LevelLow:    "簡易穩定",
			LevelMedium: "需定期更換清潔",
			LevelHigh:   "多項管路侵入",
		},
	},
	{
		ID:   16,
		Text: "跨系統轉介或社工長期介入的強度？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 1},
			LevelMedium: {1, 2, 1, 2},
			LevelHigh:   {2, 4, 2, 3},
		},
		Options: map[Level]string{
			LevelLow:    "低度諮詢",
			LevelMedium: "短期或區域性跨單位",
			LevelHigh:   "多系統共同介入",
		},
	},
	{
		ID:   17,
		Text: "抗拒參與集體活動的程度？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 0},
			LevelMedium: {2, 2, 0, 1},
			LevelHigh:   {3, 3, 1, 2},
		},
		Options: map[Level]string{
			LevelLow:    "願嘗試但被動",
			LevelMedium: "明確表示不參加",
			LevelHigh:   "拒絕且具敵意",
		},
	},
	{
		ID:   18,
		Text: "家庭的經濟負擔與壓力程度？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 1},
			LevelMedium: {1, 2, 1, 2},
			LevelHigh:   {2, 3, 2, 3},
		},
		Options: map[Level]string{
			LevelLow:    "偶擔憂但不影響家庭功能",
			LevelMedium: "僅能維持基本生活",
			LevelHigh:   "入不敷出",
		},
	},
	{
		ID:   19,
		Text: "是否曾與照服或醫護產生糾紛？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 1, 0},
			LevelMedium: {1, 2, 2, 1},
			LevelHigh:   {2, 4, 3, 2},
		},
		Options: map[Level]string{
			LevelLow:    "發生但不影響",
			LevelMedium: "協調後可改善",
			LevelHigh:   "影響服務進行",
		},
	},
	{
		ID:   20,
		Text: "是否有自傷或自殺傾向歷史？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 0, 1, 1},
			LevelMedium: {2, 0, 2, 1},
			LevelHigh:   {3, 1, 5, 3},
		},
		Options: map[Level]string{
			LevelLow:    "對生活期望低",
			LevelMedium: "曾出現自傷言語",
			LevelHigh:   "明確自傷行為",
		},
	},
	{
		ID:   21,
		Text: "原同住家屬分屬不同城市或國家？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 0},
			LevelMedium: {1, 3, 1, 2},
			LevelHigh:   {1, 5, 2, 3},
		},
		Options: map[Level]string{
			LevelLow:    "不到一半",
			LevelMedium: "一半以上",
			LevelHigh:   "全部",
		},
	},
	{
		ID:   22,
		Text: "家庭代間衝突的情況（如隔代教養）？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 1, 0},
			LevelMedium: {1, 2, 2, 1},
			LevelHigh:   {2, 4, 3, 2},
		},
		Options: map[Level]string{
			LevelLow:    "偶有意見不同",
			LevelMedium: "角色衝突明顯",
			LevelHigh:   "嚴重衝突",
		},
	},
	{
		ID:   23,
		Text: "需要個人化輔助設備程度？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 1, 0, 1},
			LevelMedium: {3, 2, 1, 2},
			LevelHigh:   {5, 2, 2, 5},
		},
		Options: map[Level]string{
			LevelLow:    "基本輔具",
			LevelMedium: "特定輔助設備",
			LevelHigh:   "多項專業輔助設備",
		},
	},
	{
		ID:   24,
		Text: "是否需定期復健或醫療介入的頻率？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 0, 0, 0},
			LevelMedium: {2, 0, 0, 2},
			LevelHigh:   {3, 0, 1, 3},
		},
		Options: map[Level]string{
			LevelLow:    "偶爾就醫",
			LevelMedium: "定期復健",
			LevelHigh:   "高頻率復建回診",
		},
	},
	{
		ID:   25,
		Text: "是否需備用照顧人力或替班？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 0},
			LevelMedium: {1, 2, 1, 1},
			LevelHigh:   {2, 4, 2, 3},
		},
		Options: map[Level]string{
			LevelLow:    "無固定需求",
			LevelMedium: "照顧人員偶爾可請假",
			LevelHigh:   "完全不能離開照顧人員",
		},
	},
	{
		ID:   26,
		Text: "是否有長照2.0相關補助使用？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 0, 0, 0},
			LevelMedium: {1, 1, 1, 1},
			LevelHigh:   {2, 2, 1, 2},
		},
		Options: map[Level]string{
			LevelLow:    "1-3級",
			LevelMedium: "4-6級",
			LevelHigh:   "7-8級",
		},
	},
	{
		ID:   27,
		Text: "是否需要明確照顧計畫與文件？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 0, 0, 1},
			LevelMedium: {1, 1, 1, 2},
			LevelHigh:   {2, 3, 2, 3},
		},
		Options: map[Level]string{
			LevelLow:    "無需詳細計畫",
			LevelMedium: "基本照顧指引",
			LevelHigh:   "完整照顧計畫",
		},
	},
	{
		ID:   28,
		Text: "是否曾涉及法律相關事件（如監護、訴訟等）？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 1, 0, 1},
			LevelMedium: {1, 2, 1, 2},
			LevelHigh:   {2, 4, 3, 2},
		},
		Options: map[Level]string{
			LevelLow:    "證人",
			LevelMedium: "個人民事",
			LevelHigh:   "個人刑事",
		},
	},
	{
		ID:   29,
		Text: "是否具宗教或文化照護特別需求？",
		Weights: map[Level]Weights{
			LevelLow:    {0, 0, 0, 0},
			LevelMedium: {1, 1, 1, 1},
			LevelHigh:   {2, 2, 2, 2},
		},
		Options: map[Level]string{
			LevelLow:    "有需求但可配合照顧",
			LevelMedium: "需留意並尊重",
			LevelHigh:   "特別安排與配套",
		},
	},
	{
		ID:   30,
		Text: "個案是否有對照顧人員提出不實指控紀錄？",
		Weights: map[Level]Weights{
			LevelLow:    {1, 1, 2, 1},
			LevelMedium: {2, 2, 3, 2},
			LevelHigh:   {3, 3, 5, 3},
		},
		Options: map[Level]string{
			LevelLow:    "曾有個人誤解",
			LevelMedium: "曾有不實或可引發誤解的指控",
			LevelHigh:   "明確不實指控",
		},
	},
}
