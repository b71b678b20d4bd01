// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// guardKey names the per salon-day document every booking transaction for
// that day writes to. Two transactions on the same day therefore always
// conflict, which makes the overlap count below safe to act on.
func guardKey(salonID, date string) string {
	return salonID + "|" + date
}

// InsertWithinCapacity inserts appt only if fewer than staffCount active
// appointments overlap [appt.StartAt, appt.EndAt). The count and the insert
// run in one transaction.
func (r *mongoAppointmentRepo) InsertWithinCapacity(ctx context.Context, appt *models.Appointment, staffCount int) error {
	if staffCount <= 0 {
		return ErrCapacityExceeded
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	txnFn := func(sc mongo.SessionContext) error {
		guardFilter := bson.M{"_id": guardKey(appt.SalonID, appt.Date)}
		guardUpdate := bson.M{
			"$inc":         bson.M{"version": 1},
			"$set":         bson.M{"updatedAt": time.Now()},
			"$setOnInsert": bson.M{"salonId": appt.SalonID, "date": appt.Date},
		}
		if _, err := r.guards.UpdateOne(sc, guardFilter, guardUpdate, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("bump booking guard: %w", err)
		}

		overlapFilter := bson.M{
			"salonId": appt.SalonID,
			"date":    appt.Date,
			"status":  bson.M{"$ne": models.StatusCancelled},
			"startAt": bson.M{"$lt": appt.EndAt},
			"endAt":   bson.M{"$gt": appt.StartAt},
		}
		overlapping, err := r.coll.CountDocuments(sc, overlapFilter)
		if err != nil {
			return fmt.Errorf("count overlapping appointments: %w", err)
		}
		if int(overlapping) >= staffCount {
			return ErrCapacityExceeded
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment: %w", err)
		}
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(txnOpts); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(context.Background())
			return err
		}
		return sc.CommitTransaction(sc)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrCapacityExceeded):
		return ErrCapacityExceeded
	case isWriteConflict(err):
		return ErrWriteConflict
	default:
		return fmt.Errorf("booking transaction failed: %w", err)
	}
}

// isWriteConflict reports whether err is a transaction conflict that is safe
// to retry from the start.
func isWriteConflict(err error) bool {
	var serverErr mongo.ServerError
	if !errors.As(err, &serverErr) {
		return false
	}
	// 112 is WriteConflict.
	return serverErr.HasErrorLabel("TransientTransactionError") || serverErr.HasErrorCode(112)
}
