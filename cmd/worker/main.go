package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sharan-555/portfolio-api/internal/config"
	"github.com/sharan-555/portfolio-api/internal/email"
	"github.com/sharan-555/portfolio-api/internal/store/rabbitmq"
)

func workerConcurrency() int {
	v := os.Getenv("WORKER_CONCURRENCY")
	if v == "" {
		return 2
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 2
	}
	if n > 50 {
		return 50
	}
	return n
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	smtp := email.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("rabbit dial: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbit channel: %v", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(cfg.RabbitQueue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.RabbitQueue + ".dlq",
	})
	if err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	concurrency := workerConcurrency()

	if err := ch.Qos(concurrency, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("notification worker started, queue=%s concurrency=%d", cfg.RabbitQueue, concurrency)

	jobs := make(chan amqp.Delivery, concurrency*2)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			for d := range jobs {
				var n rabbitmq.NotificationMessage
				if err := json.Unmarshal(d.Body, &n); err != nil || n.Email == "" {
					log.Printf("worker=%d bad message: %v", workerID, err)
					_ = d.Nack(false, false)
					continue
				}

				start := time.Now()
				sendEmails(smtp, cfg.NotifyTo, n)
				log.Printf("worker=%d notification sent contact_id=%s cost=%s", workerID, n.ContactID, time.Since(start))

				if err := d.Ack(false); err != nil {
					log.Printf("worker=%d ack failed contact_id=%s err=%v", workerID, n.ContactID, err)
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("worker shutting down")
			close(jobs)
			wg.Wait()
			return

		case d, ok := <-msgs:
			if !ok {
				log.Printf("delivery channel closed")
				time.Sleep(1 * time.Second)
				continue
			}
			jobs <- d
		}
	}
}

// sendEmails delivers the owner notification and the auto-reply. Failures
// are logged only: the notification channel is best-effort end to end and a
// redelivery loop on a dead SMTP host would gain nothing.
func sendEmails(smtp email.SMTPConfig, notifyTo string, n rabbitmq.NotificationMessage) {
	body := email.NotificationBody(n.Name, n.Email, n.Subject, n.Message, n.IPAddress, n.CreatedAt)
	if err := email.SendText(smtp, notifyTo, email.NotificationSubject(), body); err != nil {
		log.Printf("notification email failed contact_id=%s err=%v", n.ContactID, err)
	}

	if err := email.SendText(smtp, n.Email, email.AutoReplySubject(), email.AutoReplyBody(n.Name)); err != nil {
		log.Printf("auto-reply failed contact_id=%s err=%v", n.ContactID, err)
	}
}
