// Package sources holds the bootstrap catalog of ministry notice boards.
package sources

type Entry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// catalog lists every ministry recruitment board the pipeline polls.
// Seeded into storage once, on first boot against an empty sources table.
var catalog = []Entry{
	{Name: "기획재정부", URL: "https://www.moef.go.kr/nw/notice/emrc.do;jsessionid=FzBiPexPRZpNxQLxalwGq2H7YwhB4t59BUq8JqAz.node20?menuNo=4050200"},
	{Name: "교육부", URL: "https://www.moe.go.kr/boardCnts/listRenew.do?boardID=194&m=020602&s=moe"},
	{Name: "과학기술정보통신부", URL: "https://www.msit.go.kr/bbs/list.do?sCode=user&mPid=121&mId=125"},
	{Name: "외교부", URL: "https://www.mofa.go.kr/www/brd/m_4079/list.do"},
	{Name: "통일부", URL: "https://www.unikorea.go.kr/unikorea/notify/recruit/"},
	{Name: "법무부", URL: "https://www.moj.go.kr/moj/225/subview.do"},
	{Name: "국방부", URL: "https://www.mnd.go.kr/user/boardList.action?boardId=I_26382&mcategoryId=&id=mnd_020403000000"},
	{Name: "행정안전부", URL: "https://www.mois.go.kr/frt/bbs/type013/commonSelectBoardList.do?bbsId=BBSMSTR_000000000006"},
	{Name: "국가보훈부", URL: "https://www.mpva.go.kr/mpva/selectBbsNttList.do?bbsNo=360&key=1801"},
	{Name: "문화체육관광부", URL: "https://www.mcst.go.kr/kor/s_notice/notice/jobList.jsp"},
	{Name: "농림축산식품부", URL: "https://www.mafra.go.kr/home/5111/subview.do?enc=Zm5jdDF8QEB8JTJGYmJzJTJGaG9tZSUyRjc5NCUyRmFydGNsTGlzdC5kbyUzRg%3D%3D"},
	{Name: "산업통상자원부", URL: "https://www.motie.go.kr/kor/article/ATCL2527aa115"},
	{Name: "보건복지부", URL: "https://www.mohw.go.kr/board.es?mid=a10501010400&bid=0003&cg_code=C02"},
	{Name: "환경부", URL: "https://www.me.go.kr/home/web/index.do?menuId=10530"},
	{Name: "고용노동부", URL: "https://www.moel.go.kr/news/notice/noticeList.do?searchDivCd=004"},
	{Name: "여성가족부", URL: "https://www.mogef.go.kr/nw/ntc/nw_ntc_s001.do?div1=13&div3=10"},
	{Name: "국토교통부", URL: "https://www.molit.go.kr/USR/BORD0201/m_81/BRD.jsp"},
	{Name: "인사혁신처", URL: "https://www.mpm.go.kr/mpm/info/infoJobs/jobsBoard/?mode=list&boardId=bbs_0000000000000118&category=%EC%B1%84%EC%9A%A9"},
	{Name: "법제처", URL: "https://www.moleg.go.kr/board.es?mid=a10504000000&bid=0010"},
	{Name: "식품의약품안전처", URL: "https://www.nifds.go.kr/brd/m_22/list.do?page=1&srchFr=&srchTo=&srchWord=&srchTp=&itm_seq_1=0&itm_seq_2=0&multi_itm_seq=0&company_cd=&company_nm="},
	{Name: "공정거래위원회", URL: "https://www.ftc.go.kr/www/selectBbsNttList.do?bordCd=4&key=14"},
	{Name: "국민권익위원회", URL: "https://www.acrc.go.kr/board.es?mid=a10401020000&bid=2B"},
	{Name: "금융위원회", URL: "https://www.fsc.go.kr/no010104"},
	{Name: "개인정보보호위원회", URL: "https://www.pipc.go.kr/np/cop/bbs/selectBoardList.do?bbsId=BS208&mCode=C010020000"},
	{Name: "원자력안전위원회", URL: "https://www.nssc.go.kr/ko/cms/FR_CON/index.do?MENU_ID=180"},
}

// Catalog returns a copy of the built-in catalog.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}
