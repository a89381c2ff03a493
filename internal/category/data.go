package category

var descriptors = map[Category]Descriptor{
	Vision: {
		Key:            Vision,
		Title:          "교사용 이미지 분석 프롬프트 생성 도구",
		HasStudentView: true,
		ExamplePrompt:  "예시: 너는 A활동을 돕는 보조교사 입니다. 학생이 B사진을 입력하면, 인공지능이 B를 분석하여 C를 할 수 있도록 도움을 주세요.",
		Draft: Instruction{
			System: "당신은 Vision API를 사용하여 교육 목적으로 시스템 프롬프트를 만드는 것을 돕는 AI입니다. 이미지의 시각적 요소를 분석하여 이에 기반한 프롬프트를 생성하세요.",
			User:   "프롬프트의 주제는: %s입니다. 이 주제를 바탕으로 Vision API를 사용하여 창의적이고 교육적인 시스템 프롬프트를 생성해 주세요.",
		},
		StudentView: Instruction{
			System: "당신은 교사가 만든 vision 프롬프트의 제목을 간단한 단어로 변환하는 AI 조교입니다.",
			User:   "다음 vision 프롬프트의 제목을 지어주고, 이 프롬프트와 인공지능 모델을 이용하기 위해 학생이 입력해야할 이미지를 말해주세요.: %s",
		},
		Samples: visionSamples,
	},
	Text: {
		Key:            Text,
		Title:          "교사용 프롬프트 생성 도구",
		HasStudentView: true,
		ExamplePrompt:  "예시: 너는 A활동을 돕는 보조교사 입니다. 학생이 B를 입력하면, 인공지능이 B를 분석하여 C를 할 수 있도록 도움을 주세요.",
		Draft: Instruction{
			System: "당신은 text generation api를 이용하여 교육 목적으로 시스템 프롬프트를 만드는 것을 돕는 AI입니다.",
			User:   "프롬프트의 주제는: %s입니다. 이 주제를 바탕으로 Text Generation API를 사용하여 창의적이고 교육적인 시스템 프롬프트를 생성해 주세요.",
		},
		StudentView: Instruction{
			System: "당신은 수업용 프롬프트를 학생들이 필요한 내용으로 변환하는 AI 조교입니다.",
			User:   "다음 text 생성 프롬프트의 제목을 간단하게 지어주고, 학생이 입력해야할 내용을 간단하게 말해주세요.: %s",
		},
		Samples: textSamples,
	},
	Image: {
		Key:           Image,
		Title:         "교사용 이미지 생성 프롬프트 도구",
		HasAdjectives: true,
		ExamplePrompt: "예시: 곰, 나무, 산",
		Draft: Instruction{
			System: "당신은 이미지 생성 API를 이용하여 교육 목적으로 이미지 대상을 정하는 것을 돕는 AI입니다.",
			User:   "프롬프트의 주제는: %s입니다. 이 주제를 바탕으로 학생들이 그려볼 만한 이미지 대상을 간단한 명사로 제안해 주세요.",
		},
		DefaultAdjectives: defaultAdjectives,
	},
	Chatbot: {
		Key:            Chatbot,
		Title:          "교사용 챗봇 프롬프트 생성 도구",
		HasStudentView: true,
		ExamplePrompt:  "예시: 너는 학생들의 질문에 답변해주는 챗봇입니다. 학생이 질문하면 친절하게 답변해 주세요.",
		Draft: Instruction{
			System: "당신은 챗봇 프롬프트 생성을 돕는 AI입니다.",
			User:   "프롬프트의 주제는: %s입니다. 이 주제를 바탕으로 창의적이고 교육적인 챗봇 프롬프트를 생성해 주세요.",
		},
		StudentView: Instruction{
			System: "당신은 교사가 만든 챗봇 프롬프트를 학생들이 이해할 수 있도록 변환하는 AI 조교입니다.",
			User:   "다음 챗봇 프롬프트를 학생들이 쉽게 이해할 수 있도록 변환해주세요: %s",
		},
		Samples: chatbotSamples,
	},
}

var visionSamples = []Sample{
	{"2학년 미술시간 - 사진 속 감정 분석", "사진 속 인물들의 감정을 분석하여 초등학생이 이해할 수 있도록 설명해 주세요."},
	{"2학년 사회시간 - 풍경 사진 설명", "풍경 사진을 보고, 그 특징과 아름다움을 초등학생이 이해할 수 있도록 설명해 주세요."},
	{"2학년 과학시간 - 동물 사진 설명", "동물 사진을 보고, 그 동물의 특성을 설명하고, 초등학생이 이해할 수 있도록 쉽게 풀어 설명해 주세요."},
	{"2학년 미술시간 - 미술 작품 분석", "미술 작품 사진을 보고, 초등학생이 이해할 수 있도록 그 작품의 주요 특징을 설명해 주세요."},
	{"3학년 과학시간 - 자연 현상 분석", "자연 현상의 사진을 보고, 그 현상이 무엇인지 설명하고 왜 그런 현상이 일어나는지 초등학생에게 설명해 주세요."},
	{"3학년 사회시간 - 건축물 사진 설명", "건축물 사진을 보고, 그 건축물이 어떤 목적으로 만들어졌는지와 그 디자인의 특징을 설명해 주세요."},
	{"3학년 과학시간 - 동물 행동 분석", "동물이 무엇을 하고 있는지 사진을 보고 설명하고, 그 행동이 왜 중요한지 설명해 주세요."},
	{"3학년 사회시간 - 날씨 사진 설명", "날씨와 관련된 사진을 보고 그 날씨 상황을 설명하고, 초등학생이 이해할 수 있도록 그 영향도 설명해 주세요."},
	{"4학년 과학시간 - 우주 사진 설명", "우주 사진을 보고, 그 사진에 나타난 행성, 별, 은하 등을 설명하고, 초등학생이 이해할 수 있도록 그 특징을 알려주세요."},
	{"4학년 체육시간 - 스포츠 사진 분석", "스포츠 경기가 이루어지는 사진을 보고, 그 경기의 규칙과 진행 상황을 설명해 주세요."},
	{"5학년 사회시간 - 사람의 표정 분석", "사람의 표정을 분석하여 그 사람이 어떤 감정을 느끼고 있을지 초등학생이 이해할 수 있도록 설명해 주세요."},
	{"5학년 사회시간 - 교통수단 사진 설명", "교통수단의 사진을 보고, 그 교통수단이 어떻게 사용되는지와 왜 중요한지 설명해 주세요."},
	{"5학년 과학시간 - 식물 사진 분석", "식물의 사진을 보고, 그 식물이 어떻게 자라는지와 그 식물의 특징을 설명해 주세요."},
	{"6학년 사회시간 - 고대 유물 사진 설명", "고대 유물의 사진을 보고, 그 유물이 어떤 역사적 의미를 가지는지 설명해 주세요."},
	{"6학년 역사시간 - 인물 사진 설명", "역사적 인물의 사진을 보고, 그 인물이 어떤 일을 했고 왜 중요한지 초등학생이 이해할 수 있도록 설명해 주세요."},
	{"6학년 사회시간 - 풍경 사진의 계절 설명", "풍경 사진을 보고, 그 사진이 어떤 계절에 찍혔는지와 그 계절의 특징을 설명해 주세요."},
	{"6학년 과학시간 - 기후 변화 사진 분석", "기후 변화의 징후를 보여주는 사진을 보고, 그 사진이 무엇을 나타내고 있는지 설명하고 기후 변화의 중요성을 설명해 주세요."},
	{"6학년 역사시간 - 역사적 사건 사진 설명", "역사적인 사건이 담긴 사진을 보고, 그 사건이 무엇인지와 왜 중요한지 초등학생이 이해할 수 있도록 설명해 주세요."},
	{"6학년 사회시간 - 문화 행사 사진 설명", "문화 행사의 사진을 보고, 그 행사가 어떤 목적으로 이루어졌고 그 의미가 무엇인지 설명해 주세요."},
	{"6학년 과학시간 - 직업 사진 설명", "다양한 직업을 가진 사람들이 나오는 사진을 보고, 그 사람들이 어떤 일을 하고 있는지 설명해 주세요."},
}

var textSamples = []Sample{
	{"2학년 수학시간 - 덧셈 문제 풀기", "학생이 두 자리 수 더하기 두 자리 수 문제를 넣으면 힌트를 줍니다. 절대 정답은 말하지 말고, 일의 자리와 십의 자리를 따로 계산하는 방법만 설명하세요."},
	{"2학년 도덕시간 - 친구에게 줄 상장 만들기", "학생이 친구와의 추억을 입력하면, 그 내용을 바탕으로 상장 제목과 내용을 만들도록 도와주세요. 친구와의 관계에서 존중과 배려의 덕목을 자연스럽게 설명하게 하세요."},
	{"2학년 음악시간 - 노래 가사 이해하기", "학생이 노래 가사를 입력하면, 그 가사를 1~2학년 수준에 맞게 쉽게 풀어 설명하세요. 감정과 메시지를 이해하도록 도와주세요."},
	{"3학년 국어시간 - 이야기 요약하기", "학생이 읽은 이야기를 넣으면, 이야기를 요약하는 방법을 알려줍니다. 이야기의 중요한 부분을 파악하도록 도와주고, 시작, 중간, 끝을 생각하게 하세요."},
	{"3학년 미술시간 - 작품 설명하기", "학생이 교과서에 있는 작품 이름을 넣으면, 그 작품의 색감과 구도를 3학년 수준에 맞춰 설명하세요. 절대 심화된 용어를 사용하지 말고, 쉽게 이해할 수 있도록 하세요."},
	{"3학년 사회시간 - 지역 탐구", "학생이 살고 있는 지역에 대해 입력하면, 그 지역의 특성을 조사하는 방법을 설명하세요. 지도를 통해 찾아보고, 지역의 특징을 발견하는 힌트를 제공하세요."},
	{"사회시간 - 백과사전 글 쉽게 설명하기", "학생이 백과사전에서 찾은 글을 입력하면, 그 내용을 초등학생 수준에 맞게 쉬운 말로 풀어 설명하세요. 어려운 낱말은 쉬운 낱말로 바꾸고, 예시를 들어 이해를 도와주세요."},
	{"4학년 국어시간 - 주장과 근거 찾기", "학생이 주장을 입력하면, 그 주장에 맞는 근거를 찾는 방법을 알려주세요. 학생 스스로 그 주장과 근거를 연결할 수 있도록 힌트를 제공하세요."},
	{"4학년 미술시간 - 작품 감상하기", "학생이 미술 작품 이름을 입력하면, 그 작품의 특징을 3~4학년 수준에 맞게 쉽게 설명하세요. 색감, 구도 등을 간단히 설명하고 학생의 의견을 유도하세요."},
	{"4학년 체육시간 - 게임 규칙 설명", "학생이 게임의 규칙을 입력하면, 그 규칙을 변형할 수 있는 아이디어를 주세요."},
	{"5학년 수학시간 - 곱셈과 나눗셈 문제 풀기", "학생이 곱셈 또는 나눗셈 문제를 입력하면, 그 문제를 푸는 방법을 단계별로 설명하세요. 절대 정답을 말하지 말고, 스스로 계산할 수 있도록 도와주세요."},
	{"5학년 과학시간 - 동물의 생활 방식 이해하기", "학생이 특정 동물의 이름을 입력하면, 그 동물이 어떻게 환경에 적응하며 살아가는지 설명하세요. 학생이 스스로 그 생활 방식을 찾아낼 수 있도록 유도하세요."},
	{"5학년 체육시간 - 운동 계획 세우기", "학생이 운동 계획을 입력하면, 적절한 운동량과 시간을 설정하도록 도와주세요. 자신의 수준에 맞는 운동 계획을 스스로 세울 수 있도록 힌트를 주세요."},
	{"5학년 국어시간 - 시 쓰기 연습", "학생이 시를 쓰고 싶다고 입력하면, 시를 시작하는 방법과 감정을 표현하는 방법을 설명하세요. 자연이나 일상에서 느낀 감정을 글로 표현하도록 도와주세요."},
	{"5학년 사회시간 - 사회상황 이해하기", "학생이 현대 사회상황(정치, 민주주의, 경제 등)에 대해 입력하면, 그 개념을 쉽게 동화로 비유하여 설명해주세요."},
	{"6학년 과학시간 - 기후 변화의 영향", "학생이 기후 변화와 관련된 내용을 입력하면, 기후 변화가 우리 생활에 미치는 영향을 설명하세요. 학생이 실생활 예시를 통해 이해할 수 있도록 힌트를 제공하세요."},
	{"6학년 국어시간 - 글의 구조 파악하기", "학생이 글을 입력하면, 그 글의 구조(시작, 중간, 끝)를 파악할 수 있도록 도와주세요. 학생이 글의 주요 흐름을 이해할 수 있게 설명하세요."},
}

var chatbotSamples = []Sample{
	{"기본 인사 챗봇", "학생들이 쉽게 따라할 수 있는 기본 인사말을 주고받을 수 있는 챗봇을 만들어주세요."},
	{"숙제 도움 챗봇", "학생들이 숙제에 대해 질문하면 도움을 줄 수 있는 챗봇을 만들어주세요."},
	{"학습 동기 부여 챗봇", "학생들의 학습 동기를 높여줄 수 있는 긍정적인 메시지를 전달하는 챗봇을 만들어주세요."},
	{"언어 연습 챗봇", "학생들이 외국어를 연습할 수 있도록 도와주는 챗봇을 만들어주세요."},
	{"퀴즈 챗봇", "간단한 퀴즈를 통해 학생들의 이해도를 확인할 수 있는 챗봇을 만들어주세요."},
}

var defaultAdjectives = []string{
	"몽환적인", "현실적인", "우아한", "고요한", "활기찬",
	"긴장감 있는", "로맨틱한", "공포스러운", "신비로운", "평화로운",
	"미니멀한", "복잡한", "빈티지한", "모던한", "고전적인",
	"미래적인", "자연주의적인", "기하학적인", "추상적인", "대담한",
	"매끄러운", "거친", "부드러운", "뾰족한", "질감이 느껴지는",
	"광택 있는", "매트한", "무광의",
	"즐거운", "슬픈", "분노한", "평온한", "감동적인",
	"따뜻한", "외로운", "흥미로운", "짜릿한", "사려 깊은",
}
