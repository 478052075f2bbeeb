package mailer

import "fmt"

// Email holds a composed message with both plain-text and HTML bodies.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

const credentialsSubject = "BCPC"

const credentialsBodyTemplate = `
سلام بچه‌ها،

اطلاعات ورود شما به شرح زیر است:

یوزرنیم: %s
پسورد: %s

برای شرکت در مسابقه، به آدرس زیر مراجعه کنید:
https://bircpc.ir/

اگر مشکلی در ورود به سایت داشتید یا سوالی برایتان پیش آمد، از طریق ایمیل یا گروه تلگرام ما را مطلع کنید.

همچنین می‌تونید اخبار و اطلاعات بیشتر در مورد مسابقه‌مون رو توی وبلاگ دنبال کنید:
https://blog.bircpc.ir/

با آرزوی موفقیت،
انجمن علمی کامپیوتر دانشگاه بیرجند
`

// BuildCredentialsEmail fills the fixed contest template with one team's login.
func BuildCredentialsEmail(username, password string) Email {
	text := fmt.Sprintf(credentialsBodyTemplate, username, password)
	return Email{
		Subject:  credentialsSubject,
		TextBody: text,
		HTMLBody: "<pre>" + text + "</pre>",
	}
}
